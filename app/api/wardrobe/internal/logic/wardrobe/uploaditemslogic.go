package logic

import (
	"context"
	"strconv"
	"time"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"
	"Wardrobe/app/common/mq"
	wardrobemodel "Wardrobe/app/dal/wardrobe"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UploadItemsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUploadItemsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UploadItemsLogic {
	return &UploadItemsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UploadItems stores every accepted image as <id>.<ext> and records the model's
// description of it. Files with other extensions are skipped.
func (l *UploadItemsLogic) UploadItems(files []helper.FilePart) (*types.UploadItemsResponse, error) {
	uid, err := helper.CurrentUserId(l.ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New(errno.NoFilesUploaded, "no files uploaded")
	}

	resp := &types.UploadItemsResponse{Uploaded: []types.WardrobeItem{}}
	for _, f := range files {
		if !f.Allowed() {
			l.Logger.Infof("skip upload %q: extension not allowed", f.Filename)
			continue
		}

		item, err := l.uploadOne(uid, f)
		if err != nil {
			return nil, err
		}
		resp.Uploaded = append(resp.Uploaded, helper.ToWardrobeItem(item))
	}
	return resp, nil
}

func (l *UploadItemsLogic) uploadOne(uid uint64, f helper.FilePart) (*wardrobemodel.WardrobeItems, error) {
	// 先插入空记录拿到自增 id，文件名依赖这个 id
	res, err := l.svcCtx.WardrobeModel.Insert(l.ctx, &wardrobemodel.WardrobeItems{UserId: uid})
	if err != nil {
		l.Logger.Errorf("insert wardrobe item failed: %v", err)
		return nil, errors.New(errno.InternalError, "create item failed")
	}
	id, err := res.LastInsertId()
	if err != nil {
		l.Logger.Errorf("read wardrobe item id failed: %v", err)
		return nil, errors.New(errno.InternalError, "create item failed")
	}

	item := &wardrobemodel.WardrobeItems{
		Id:        uint64(id),
		UserId:    uid,
		Filename:  strconv.FormatInt(id, 10) + "." + f.Ext(),
		CreatedAt: time.Now(),
	}

	if err := l.svcCtx.Store.Save(l.ctx, item.Filename, f.Data); err != nil {
		l.Logger.Errorf("save file %s failed: %v", item.Filename, err)
		l.rollback(item, false)
		return nil, errors.New(errno.InternalError, "save file failed")
	}

	analysis, err := l.svcCtx.Analyzer.Describe(l.ctx, f.Data, helper.MimeType(f.Ext()))
	if err != nil {
		l.Logger.Errorf("describe %s failed: %v", item.Filename, err)
		l.rollback(item, true)
		return nil, errors.New(errno.UpstreamModelError, "describe image failed")
	}
	item.Description = analysis.Raw

	if err := l.svcCtx.WardrobeModel.Update(l.ctx, item); err != nil {
		l.Logger.Errorf("update wardrobe item %d failed: %v", item.Id, err)
		l.rollback(item, true)
		return nil, errors.New(errno.InternalError, "update item failed")
	}

	if stored, err := l.svcCtx.WardrobeModel.FindOne(l.ctx, item.Id); err == nil {
		item = stored
	}

	publish(l.ctx, l.svcCtx, mq.EventItemCreated, item)
	return item, nil
}

// rollback drops the half-created row and, when it was written, the file.
func (l *UploadItemsLogic) rollback(item *wardrobemodel.WardrobeItems, fileSaved bool) {
	if fileSaved {
		if err := l.svcCtx.Store.Remove(l.ctx, item.Filename); err != nil {
			l.Logger.Errorf("rollback remove file %s failed: %v", item.Filename, err)
		}
	}
	if err := l.svcCtx.WardrobeModel.Delete(l.ctx, item.Id); err != nil {
		l.Logger.Errorf("rollback delete item %d failed: %v", item.Id, err)
	}
}
