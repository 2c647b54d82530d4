package logic

import (
	"context"

	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"
	"Wardrobe/app/common/mq"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type DeleteItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteItemLogic {
	return &DeleteItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteItemLogic) DeleteItem(req *types.ItemPathRequest) (*types.DeleteItemResponse, error) {
	item, err := findOwnItem(l.ctx, l.svcCtx, req.Id)
	if err != nil {
		return nil, err
	}

	if item.Filename != "" {
		if err := l.svcCtx.Store.Remove(l.ctx, item.Filename); err != nil {
			l.Logger.Errorf("remove file %s failed: %v", item.Filename, err)
			return nil, errors.New(errno.InternalError, "remove file failed")
		}
	}
	if err := l.svcCtx.WardrobeModel.Delete(l.ctx, item.Id); err != nil {
		l.Logger.Errorf("delete wardrobe item %d failed: %v", item.Id, err)
		return nil, errors.New(errno.InternalError, "delete item failed")
	}

	publish(l.ctx, l.svcCtx, mq.EventItemDeleted, item)
	return &types.DeleteItemResponse{
		Message: "Deleted",
		Id:      item.Id,
	}, nil
}
