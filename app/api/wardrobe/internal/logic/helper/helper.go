package helper

import (
	"context"
	"database/sql"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"
	"Wardrobe/app/common/util"
	usermodel "Wardrobe/app/dal/user"
	wardrobemodel "Wardrobe/app/dal/wardrobe"

	"github.com/zeromicro/x/errors"
)

const (
	formFiles = "files"
	formFile  = "file"

	multipartMemory = 32 << 20
)

var allowedExt = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
}

// FilePart is an uploaded file read fully into memory.
type FilePart struct {
	Filename string
	Data     []byte
}

// Ext returns the lower-cased extension without the dot, or "" when the file
// type is not accepted.
func (p FilePart) Ext() string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(p.Filename), "."))
	if _, ok := allowedExt[ext]; !ok {
		return ""
	}
	return ext
}

func (p FilePart) Allowed() bool {
	return p.Ext() != ""
}

func MimeType(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if m, ok := allowedExt[ext]; ok {
		return m
	}
	if m := mime.TypeByExtension("." + ext); m != "" {
		return m
	}
	return "application/octet-stream"
}

// ReadUploads collects the files sent under "files", or the single "file"
// field when "files" is absent. Files larger than maxBytes are rejected.
func ReadUploads(r *http.Request, maxBytes int64) ([]FilePart, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			if err == http.ErrNotMultipart {
				return nil, nil
			}
			return nil, errors.New(errno.InvalidParam, "invalid multipart form")
		}
	}

	headers := r.MultipartForm.File[formFiles]
	if len(headers) == 0 {
		headers = r.MultipartForm.File[formFile]
	}

	parts := make([]FilePart, 0, len(headers))
	for _, fh := range headers {
		if fh.Filename == "" {
			continue
		}
		if maxBytes > 0 && fh.Size > maxBytes {
			return nil, errors.New(errno.FileTooLarge, "file "+fh.Filename+" is too large")
		}
		data, err := readHeader(fh)
		if err != nil {
			return nil, errors.New(errno.InvalidParam, "read file "+fh.Filename+" failed")
		}
		parts = append(parts, FilePart{Filename: fh.Filename, Data: data})
	}
	return parts, nil
}

func readHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func CurrentUserId(ctx context.Context) (uint64, error) {
	uid, err := util.UserIdFromCtx(ctx)
	if err != nil {
		return 0, err
	}
	if uid <= 0 {
		return 0, errors.New(errno.TokenInvalid, "invalid user")
	}
	return uint64(uid), nil
}

func ItemFileUrl(id uint64) string {
	return "/wardrobe/" + strconv.FormatUint(id, 10) + "/file"
}

func ToWardrobeItem(it *wardrobemodel.WardrobeItems) types.WardrobeItem {
	if it == nil {
		return types.WardrobeItem{}
	}
	return types.WardrobeItem{
		Id:          it.Id,
		Filename:    it.Filename,
		FileUrl:     ItemFileUrl(it.Id),
		Description: it.Description,
		CreatedAt:   it.CreatedAt.Unix(),
		UserId:      it.UserId,
	}
}

func ToUserProfile(u *usermodel.Users) types.UserProfile {
	if u == nil {
		return types.UserProfile{}
	}
	return types.UserProfile{
		Id:        u.Id,
		Email:     u.Email,
		Name:      u.Name,
		SkinTone:  nullString(u.SkinTone),
		Gender:    nullString(u.Gender),
		CreatedAt: u.CreatedAt.Unix(),
	}
}

func NewNullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
