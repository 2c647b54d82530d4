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
)

type GetProfileLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetProfileLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetProfileLogic {
	return &GetProfileLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetProfileLogic) GetProfile() (*types.UserProfile, error) {
	user, err := loadCurrentUser(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}
	profile := helper.ToUserProfile(user)
	return &profile, nil
}

func loadCurrentUser(ctx context.Context, svcCtx *svc.ServiceContext) (*usermodel.Users, error) {
	uid, err := helper.CurrentUserId(ctx)
	if err != nil {
		return nil, err
	}

	user, err := svcCtx.UserModel.FindOne(ctx, uid)
	if err == usermodel.ErrNotFound {
		return nil, errors.New(errno.UserNotFound, "user not found")
	}
	if err != nil {
		logx.WithContext(ctx).Errorf("find user %d failed: %v", uid, err)
		return nil, errors.New(errno.InternalError, "db error")
	}
	return user, nil
}
