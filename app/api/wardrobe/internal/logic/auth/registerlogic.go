package logic

import (
	"context"
	"strings"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"
	usermodel "Wardrobe/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"golang.org/x/crypto/bcrypt"
)

type RegisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRegisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterLogic {
	return &RegisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RegisterLogic) Register(req *types.RegisterRequest) (*types.AuthResponse, error) {
	email := helper.NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || req.Password == "" || name == "" {
		return nil, errors.New(errno.InvalidParam, "email, password and name are required")
	}

	// 布隆过滤器说不存在就一定不存在，可以跳过一次查库
	mayExist := true
	if l.svcCtx.Bloom != nil {
		exists, err := l.svcCtx.Bloom.Exists([]byte(email))
		if err != nil {
			l.Logger.Errorf("register bloom exists failed: %v", err)
		} else {
			mayExist = exists
		}
	}
	if mayExist {
		if _, err := l.svcCtx.UserModel.FindOneByEmail(l.ctx, email); err == nil {
			return nil, errors.New(errno.UserAlreadyExists, "email already registered")
		} else if err != usermodel.ErrNotFound {
			l.Logger.Errorf("find user by email failed: %v", err)
			return nil, errors.New(errno.InternalError, "db error")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Logger.Errorf("hash password failed: %v", err)
		return nil, errors.New(errno.InternalError, "hash password failed")
	}

	res, err := l.svcCtx.UserModel.Insert(l.ctx, &usermodel.Users{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		SkinTone:     helper.NewNullString(req.SkinTone),
		Gender:       helper.NewNullString(req.Gender),
	})
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return nil, errors.New(errno.UserAlreadyExists, "email already registered")
		}
		l.Logger.Errorf("insert user failed: %v", err)
		return nil, errors.New(errno.InternalError, "insert user failed")
	}
	id, err := res.LastInsertId()
	if err != nil {
		l.Logger.Errorf("read user id failed: %v", err)
		return nil, errors.New(errno.InternalError, "insert user failed")
	}

	if l.svcCtx.Bloom != nil {
		if err := l.svcCtx.Bloom.Add([]byte(email)); err != nil {
			l.Logger.Errorf("register bloom add failed: %v", err)
		}
	}

	created, err := l.svcCtx.UserModel.FindOne(l.ctx, uint64(id))
	if err != nil {
		l.Logger.Errorf("load created user %d failed: %v", id, err)
		return nil, errors.New(errno.InternalError, "load user failed")
	}

	return issueToken(l.svcCtx, created)
}
