package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasameenmsa/talentvault/pkg/internal/types"
)

func TestDownloadPublicByAnyone(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	up, err := s.UploadFile(ctx, jobseeker("acme-hr"),
		&types.UploadFileForm{FileType: "company-logo"}, "logo.png", pngData)
	require.NoError(t, err)

	res, err := s.DownloadByID(ctx, types.Principal{}, up.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pngData, res.Data)
	assert.Equal(t, "logo.png", res.FileName)
	assert.True(t, res.Inline, "images are served inline")
	assert.True(t, res.CachePublic)
}

func TestDownloadPrivateAuthz(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	up, err := s.UploadFile(ctx, jobseeker("alice"),
		&types.UploadFileForm{FileType: "cv"}, "resume.pdf", pdfData)
	require.NoError(t, err)

	// 匿名 → 401；其他用户 → 403；归属人、上传者、管理员 → 200
	_, err = s.DownloadByID(ctx, types.Principal{}, up.ID, false)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.DownloadByID(ctx, jobseeker("mallory"), up.ID, false)
	assert.ErrorIs(t, err, ErrForbidden)

	res, err := s.DownloadByID(ctx, jobseeker("alice"), up.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pdfData, res.Data)
	assert.False(t, res.Inline)
	assert.False(t, res.CachePublic)

	_, err = s.DownloadByID(ctx, admin(), up.ID, false)
	assert.NoError(t, err)
}

func TestDownloadTwo404Flavors(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.DownloadByID(ctx, admin(), "01J00000000000000000000000", false)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	up, err := s.UploadFile(ctx, jobseeker("alice"),
		&types.UploadFileForm{FileType: "cv"}, "resume.pdf", pdfData)
	require.NoError(t, err)

	rec, err := s.files.FindByID(ctx, up.ID)
	require.NoError(t, err)
	require.NoError(t, s.fsClient.Remove(rec.FilePath))

	_, err = s.DownloadByID(ctx, jobseeker("alice"), up.ID, false)
	assert.ErrorIs(t, err, ErrFileMissing)
}

func TestDownloadViewFlag(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	up, err := s.UploadFile(ctx, jobseeker("alice"),
		&types.UploadFileForm{FileType: "cv"}, "resume.pdf", pdfData)
	require.NoError(t, err)

	res, err := s.DownloadByID(ctx, jobseeker("alice"), up.ID, true)
	require.NoError(t, err)
	assert.True(t, res.Inline, "view=true forces inline disposition")
}

func TestDownloadByPathLegacyAnonymous(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	// 遗留目录下无记录的裸文件，匿名可读
	legacy := "public/uploads/old-flyer.pdf"
	require.NoError(t, s.fsClient.WriteFile(legacy, pdfData))

	res, err := s.DownloadByPath(ctx, types.Principal{}, "/uploads/old-flyer.pdf", false)
	require.NoError(t, err)
	assert.Equal(t, pdfData, res.Data)
	assert.Equal(t, "old-flyer.pdf", res.FileName)

	// 私有根下的裸文件匿名拒绝、非管理员拒绝、管理员放行
	private := "storage/uploads/cvs/orphan.pdf"
	require.NoError(t, s.fsClient.WriteFile(private, pdfData))

	_, err = s.DownloadByPath(ctx, types.Principal{}, private, false)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.DownloadByPath(ctx, jobseeker("alice"), private, false)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.DownloadByPath(ctx, admin(), private, false)
	assert.NoError(t, err)
}

func TestDownloadByPathWithRecordAuthz(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	up, err := s.UploadFile(ctx, jobseeker("alice"),
		&types.UploadFileForm{FileType: "cv"}, "resume.pdf", pdfData)
	require.NoError(t, err)

	// 有记录的私有文件按记录授权，路径写法不影响结论
	_, err = s.DownloadByPath(ctx, types.Principal{}, up.URL, false)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	res, err := s.DownloadByPath(ctx, jobseeker("alice"), up.URL, false)
	require.NoError(t, err)
	assert.Equal(t, pdfData, res.Data)
}

func TestDownloadByPathMissingFile(t *testing.T) {
	s := newTestService(t)

	_, err := s.DownloadByPath(context.Background(), types.Principal{}, "/uploads/nope.pdf", false)
	assert.ErrorIs(t, err, ErrFileMissing)
}
