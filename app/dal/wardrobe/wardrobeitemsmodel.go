package wardrobe

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ WardrobeItemsModel = (*customWardrobeItemsModel)(nil)

type (
	// WardrobeItemsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customWardrobeItemsModel.
	WardrobeItemsModel interface {
		wardrobeItemsModel
		// FindByUserId lists a user's items newest first; limit <= 0 returns all of them.
		FindByUserId(ctx context.Context, userId uint64, limit int) ([]*WardrobeItems, error)
	}

	customWardrobeItemsModel struct {
		*defaultWardrobeItemsModel
	}
)

// NewWardrobeItemsModel returns a model for the database table.
func NewWardrobeItemsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) WardrobeItemsModel {
	return &customWardrobeItemsModel{
		defaultWardrobeItemsModel: newWardrobeItemsModel(conn, c, opts...),
	}
}

func (m *customWardrobeItemsModel) FindByUserId(ctx context.Context, userId uint64, limit int) ([]*WardrobeItems, error) {
	var resp []*WardrobeItems
	query := fmt.Sprintf("select %s from %s where `user_id` = ? order by `created_at` desc, `id` desc", wardrobeItemsRows, m.table)
	args := []any{userId}
	if limit > 0 {
		query += " limit ?"
		args = append(args, limit)
	}

	if err := m.QueryRowsNoCacheCtx(ctx, &resp, query, args...); err != nil {
		return nil, err
	}
	return resp, nil
}
