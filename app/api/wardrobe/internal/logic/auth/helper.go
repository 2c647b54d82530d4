package logic

import (
	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"
	usermodel "Wardrobe/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

func issueToken(svcCtx *svc.ServiceContext, u *usermodel.Users) (*types.AuthResponse, error) {
	accessToken, _, err := svcCtx.Tokens.Sign(int64(u.Id))
	if err != nil {
		logx.Errorf("sign token for user %d failed: %v", u.Id, err)
		return nil, errors.New(errno.InternalError, "sign token failed")
	}

	return &types.AuthResponse{
		Token: accessToken,
		User:  helper.ToUserProfile(u),
	}, nil
}
