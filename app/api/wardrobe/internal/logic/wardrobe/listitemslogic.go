package logic

import (
	"context"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ListItemsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListItemsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListItemsLogic {
	return &ListItemsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListItemsLogic) ListItems() ([]types.WardrobeItem, error) {
	uid, err := helper.CurrentUserId(l.ctx)
	if err != nil {
		return nil, err
	}

	items, err := l.svcCtx.WardrobeModel.FindByUserId(l.ctx, uid, 0)
	if err != nil {
		l.Logger.Errorf("list wardrobe items for user %d failed: %v", uid, err)
		return nil, errors.New(errno.InternalError, "db error")
	}

	out := make([]types.WardrobeItem, 0, len(items))
	for _, it := range items {
		out = append(out, helper.ToWardrobeItem(it))
	}
	return out, nil
}
