package logic

import (
	"context"
	"time"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/common/consts/errno"
	"Wardrobe/app/common/mq"
	wardrobemodel "Wardrobe/app/dal/wardrobe"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

// findOwnItem returns the item only when it belongs to the current user.
// Someone else's item is reported as not found.
func findOwnItem(ctx context.Context, svcCtx *svc.ServiceContext, id uint64) (*wardrobemodel.WardrobeItems, error) {
	uid, err := helper.CurrentUserId(ctx)
	if err != nil {
		return nil, err
	}

	item, err := svcCtx.WardrobeModel.FindOne(ctx, id)
	if err == wardrobemodel.ErrNotFound || (err == nil && item.UserId != uid) {
		return nil, errors.New(errno.WardrobeItemNotFound, "item not found")
	}
	if err != nil {
		logx.WithContext(ctx).Errorf("find wardrobe item %d failed: %v", id, err)
		return nil, errors.New(errno.InternalError, "db error")
	}
	return item, nil
}

// 事件发送失败不影响请求结果
func publish(ctx context.Context, svcCtx *svc.ServiceContext, typ string, item *wardrobemodel.WardrobeItems) {
	if svcCtx.Publisher == nil {
		return
	}
	err := svcCtx.Publisher.Publish(ctx, mq.WardrobeEvent{
		Type:      typ,
		ItemID:    item.Id,
		UserID:    item.UserId,
		Filename:  item.Filename,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("publish %s for item %d failed: %v", typ, item.Id, err)
	}
}
