package logic

import (
	"context"
	"strings"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UpdateProfileLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateProfileLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateProfileLogic {
	return &UpdateProfileLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UpdateProfile only touches the fields present in the request.
func (l *UpdateProfileLogic) UpdateProfile(req *types.UpdateProfileRequest) (*types.UserProfile, error) {
	user, err := loadCurrentUser(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New(errno.InvalidParam, "name cannot be empty")
		}
		user.Name = name
	}
	if req.SkinTone != nil {
		user.SkinTone = helper.NewNullString(*req.SkinTone)
	}
	if req.Gender != nil {
		user.Gender = helper.NewNullString(*req.Gender)
	}

	if err := l.svcCtx.UserModel.Update(l.ctx, user); err != nil {
		l.Logger.Errorf("update user %d failed: %v", user.Id, err)
		return nil, errors.New(errno.InternalError, "update user failed")
	}

	profile := helper.ToUserProfile(user)
	return &profile, nil
}
