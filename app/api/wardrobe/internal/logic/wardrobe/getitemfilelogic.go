package logic

import (
	"context"
	"os"
	"path/filepath"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetItemFileLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetItemFileLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetItemFileLogic {
	return &GetItemFileLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetItemFile opens the stored image. The caller closes the file.
func (l *GetItemFileLogic) GetItemFile(req *types.ItemPathRequest) (*os.File, string, error) {
	item, err := findOwnItem(l.ctx, l.svcCtx, req.Id)
	if err != nil {
		return nil, "", err
	}

	f, err := l.svcCtx.Store.Open(item.Filename)
	if os.IsNotExist(err) {
		return nil, "", errors.New(errno.WardrobeItemNotFound, "file not found")
	}
	if err != nil {
		l.Logger.Errorf("open file %s failed: %v", item.Filename, err)
		return nil, "", errors.New(errno.InternalError, "open file failed")
	}
	return f, helper.MimeType(filepath.Ext(item.Filename)), nil
}
