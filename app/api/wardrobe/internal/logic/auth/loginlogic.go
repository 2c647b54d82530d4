package logic

import (
	"context"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"
	usermodel "Wardrobe/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"golang.org/x/crypto/bcrypt"
)

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login(req *types.LoginRequest) (*types.AuthResponse, error) {
	email := helper.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, errors.New(errno.InvalidParam, "email and password are required")
	}

	if l.svcCtx.Bloom != nil {
		exists, err := l.svcCtx.Bloom.Exists([]byte(email))
		if err != nil {
			l.Logger.Errorf("login bloom exists failed: %v", err)
		} else if !exists {
			return nil, errors.New(errno.InvalidCredentials, "invalid credentials")
		}
	}

	user, err := l.svcCtx.UserModel.FindOneByEmail(l.ctx, email)
	if err == usermodel.ErrNotFound {
		return nil, errors.New(errno.InvalidCredentials, "invalid credentials")
	}
	if err != nil {
		l.Logger.Errorf("find user by email failed: %v", err)
		return nil, errors.New(errno.InternalError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.New(errno.InvalidCredentials, "invalid credentials")
	}

	return issueToken(l.svcCtx, user)
}
