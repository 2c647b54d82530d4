package helper

import (
	"bytes"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Wardrobe/app/common/consts/errno"
	usermodel "Wardrobe/app/dal/user"
	wardrobemodel "Wardrobe/app/dal/wardrobe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/x/errors"
)

func multipartRequest(t *testing.T, field string, files map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("city", "Paris"))
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/wardrobe", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestReadUploads(t *testing.T) {
	r := multipartRequest(t, "files", map[string]string{"a.png": "aaa", "b.txt": "bbb"})
	parts, err := ReadUploads(r, 1024)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	got := map[string]string{}
	for _, p := range parts {
		got[p.Filename] = string(p.Data)
	}
	assert.Equal(t, map[string]string{"a.png": "aaa", "b.txt": "bbb"}, got)
}

func TestReadUploadsSingleFileField(t *testing.T) {
	r := multipartRequest(t, "file", map[string]string{"one.jpg": "x"})
	parts, err := ReadUploads(r, 0)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "one.jpg", parts[0].Filename)
}

func TestReadUploadsTooLarge(t *testing.T) {
	r := multipartRequest(t, "files", map[string]string{"big.png": "0123456789"})
	_, err := ReadUploads(r, 4)
	require.Error(t, err)
	cm, ok := err.(*errors.CodeMsg)
	require.True(t, ok)
	assert.Equal(t, errno.FileTooLarge, cm.Code)
}

func TestReadUploadsNotMultipart(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/outfit", bytes.NewBufferString(`{}`))
	r.Header.Set("Content-Type", "application/json")
	parts, err := ReadUploads(r, 0)
	assert.NoError(t, err)
	assert.Empty(t, parts)
}

func TestFilePartExt(t *testing.T) {
	cases := map[string]string{
		"a.png":       "png",
		"A.JPG":       "jpg",
		"b.jpeg":      "jpeg",
		"c.Gif":       "gif",
		"d.bmp":       "",
		"noext":       "",
		"tricky.png.": "",
	}
	for name, want := range cases {
		assert.Equal(t, want, FilePart{Filename: name}.Ext(), name)
	}
	assert.Equal(t, "image/jpeg", MimeType("jpg"))
	assert.Equal(t, "image/png", MimeType(".PNG"))
}

func TestConverters(t *testing.T) {
	created := time.Unix(1700000000, 0)
	item := ToWardrobeItem(&wardrobemodel.WardrobeItems{
		Id: 4, UserId: 2, Filename: "4.png", Description: "scarf", CreatedAt: created,
	})
	assert.Equal(t, "/wardrobe/4/file", item.FileUrl)
	assert.Equal(t, int64(1700000000), item.CreatedAt)

	profile := ToUserProfile(&usermodel.Users{
		Id: 2, Email: "x@y.z", Name: "X", SkinTone: sql.NullString{String: "warm", Valid: true}, CreatedAt: created,
	})
	require.NotNil(t, profile.SkinTone)
	assert.Equal(t, "warm", *profile.SkinTone)
	assert.Nil(t, profile.Gender)

	assert.False(t, NewNullString("  ").Valid)
	assert.Equal(t, sql.NullString{String: "tan", Valid: true}, NewNullString(" tan "))
}
