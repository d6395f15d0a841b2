package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasameenmsa/talentvault/pkg/internal/model"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
)

func TestUploadCVPrivate(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	resp, err := s.UploadFile(ctx, jobseeker("alice"),
		&types.UploadFileForm{FileType: "cv"}, "My Resume (2024).pdf", pdfData)
	require.NoError(t, err)

	assert.Len(t, resp.ID, 26)
	assert.Equal(t, "My Resume (2024).pdf", resp.OriginalName)
	assert.Equal(t, "application/pdf", resp.MimeType)
	assert.False(t, resp.IsPublic)
	// 私有文件URL是不带斜杠前缀的相对路径
	assert.True(t, strings.HasPrefix(resp.URL, "storage/uploads/cvs/"), "got %s", resp.URL)
	assert.Contains(t, resp.FileName, "My_Resume_2024")
	assert.True(t, strings.HasSuffix(resp.FileName, ".pdf"))

	rec, err := s.files.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.UploadedBy)
	assert.Equal(t, "alice", rec.UserID)

	exists, err := s.fsClient.Exists(rec.FilePath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUploadJobImagePublic(t *testing.T) {
	s := newTestService(t)

	resp, err := s.UploadFile(context.Background(), jobseeker("acme-hr"),
		&types.UploadFileForm{FileType: "job-image", JobID: "job-7"}, "banner.png", pngData)
	require.NoError(t, err)

	assert.True(t, resp.IsPublic)
	assert.Equal(t, "image/png", resp.MimeType)
	assert.True(t, strings.HasPrefix(resp.URL, "/storage/uploads/jobs/"), "got %s", resp.URL)
}

func TestUploadRejectsMimeMismatch(t *testing.T) {
	s := newTestService(t)

	// PNG 内容冒充简历
	_, err := s.UploadFile(context.Background(), jobseeker("alice"),
		&types.UploadFileForm{FileType: "cv"}, "resume.pdf", pngData)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// PDF 内容冒充图片
	_, err = s.UploadFile(context.Background(), jobseeker("alice"),
		&types.UploadFileForm{FileType: "profile-image"}, "avatar.png", pdfData)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestUploadRejectsOversizeAndEmpty(t *testing.T) {
	s := newTestService(t)
	s.fsClient.GetConfig().MaxUploadSize = 16

	_, err := s.UploadFile(context.Background(), jobseeker("alice"),
		&types.UploadFileForm{FileType: "cv"}, "resume.pdf", pdfData)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = s.UploadFile(context.Background(), jobseeker("alice"),
		&types.UploadFileForm{FileType: "cv"}, "resume.pdf", nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestUploadRejectsUnknownTypeAndAnonymous(t *testing.T) {
	s := newTestService(t)

	_, err := s.UploadFile(context.Background(), jobseeker("alice"),
		&types.UploadFileForm{FileType: "virus"}, "x.pdf", pdfData)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = s.UploadFile(context.Background(), types.Principal{},
		&types.UploadFileForm{FileType: "cv"}, "x.pdf", pdfData)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUploadExplicitOwner(t *testing.T) {
	s := newTestService(t)

	resp, err := s.UploadFile(context.Background(), admin(),
		&types.UploadFileForm{FileType: "document", UserID: "bob"}, "contract.pdf", pdfData)
	require.NoError(t, err)

	rec, err := s.files.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", rec.UploadedBy)
	assert.Equal(t, "bob", rec.UserID)
	assert.Equal(t, model.FileTypeDocument, rec.FileType)
}
