// Package mock holds in-memory collaborators for logic tests.
package mock

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"time"

	usermodel "Wardrobe/app/dal/user"
	wardrobemodel "Wardrobe/app/dal/wardrobe"
)

var errDuplicate = errors.New("Error 1062 (23000): Duplicate entry for key 'users.email'")

type result int64

func (r result) LastInsertId() (int64, error) { return int64(r), nil }

func (r result) RowsAffected() (int64, error) { return 1, nil }

type UsersModel struct {
	mu     sync.Mutex
	nextId uint64
	rows   map[uint64]*usermodel.Users
}

func NewUsersModel() *UsersModel {
	return &UsersModel{rows: make(map[uint64]*usermodel.Users)}
}

func (m *UsersModel) Insert(_ context.Context, data *usermodel.Users) (sql.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.rows {
		if u.Email == data.Email {
			return nil, errDuplicate
		}
	}
	m.nextId++
	row := *data
	row.Id = m.nextId
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	m.rows[row.Id] = &row
	return result(row.Id), nil
}

func (m *UsersModel) FindOne(_ context.Context, id uint64) (*usermodel.Users, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.rows[id]
	if !ok {
		return nil, usermodel.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *UsersModel) FindOneByEmail(_ context.Context, email string) (*usermodel.Users, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, usermodel.ErrNotFound
}

func (m *UsersModel) Update(_ context.Context, data *usermodel.Users) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[data.Id]; !ok {
		return usermodel.ErrNotFound
	}
	row := *data
	row.UpdatedAt = time.Now()
	m.rows[row.Id] = &row
	return nil
}

func (m *UsersModel) Delete(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *UsersModel) FindAllEmail(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	emails := make([]string, 0, len(m.rows))
	for _, u := range m.rows {
		emails = append(emails, u.Email)
	}
	return emails, nil
}

type WardrobeModel struct {
	mu     sync.Mutex
	nextId uint64
	rows   map[uint64]*wardrobemodel.WardrobeItems
	clock  time.Time

	UpdateErr error
}

func NewWardrobeModel() *WardrobeModel {
	return &WardrobeModel{
		rows:  make(map[uint64]*wardrobemodel.WardrobeItems),
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *WardrobeModel) Insert(_ context.Context, data *wardrobemodel.WardrobeItems) (sql.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextId++
	// 每条记录错开一秒，保证排序稳定
	m.clock = m.clock.Add(time.Second)
	row := *data
	row.Id = m.nextId
	row.CreatedAt = m.clock
	m.rows[row.Id] = &row
	return result(row.Id), nil
}

func (m *WardrobeModel) FindOne(_ context.Context, id uint64) (*wardrobemodel.WardrobeItems, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.rows[id]
	if !ok {
		return nil, wardrobemodel.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (m *WardrobeModel) Update(_ context.Context, data *wardrobemodel.WardrobeItems) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	old, ok := m.rows[data.Id]
	if !ok {
		return wardrobemodel.ErrNotFound
	}
	row := *data
	row.CreatedAt = old.CreatedAt
	m.rows[row.Id] = &row
	return nil
}

func (m *WardrobeModel) Delete(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *WardrobeModel) FindByUserId(_ context.Context, userId uint64, limit int) ([]*wardrobemodel.WardrobeItems, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*wardrobemodel.WardrobeItems
	for _, it := range m.rows {
		if it.UserId == userId {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Id > out[j].Id
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *WardrobeModel) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
