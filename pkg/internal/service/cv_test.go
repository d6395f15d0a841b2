package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasameenmsa/talentvault/pkg/internal/types"
)

func TestDropCV(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	resp, err := s.DropCV(ctx, &types.DropCVForm{
		Name:  "Jordan Lee",
		Email: "jordan@example.com",
		JobID: "job-12",
	}, "Jordan-CV.pdf", pdfData)
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Jordan-CV.pdf", resp.OriginalName)

	cv, err := s.cvs.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", cv.Email)
	assert.True(t, strings.HasPrefix(cv.Path, "storage/uploads/cvs/cv_Jordan_Lee_"), "got %s", cv.Path)
	assert.Equal(t, "application/pdf", cv.MimeType)

	exists, err := s.fsClient.Exists(s.fsClient.Resolver().Resolve(cv.Path))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDropCVValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.DropCV(ctx, &types.DropCVForm{Name: "X", Email: "not-an-email"}, "cv.pdf", pdfData)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = s.DropCV(ctx, &types.DropCVForm{Email: "a@b.com"}, "cv.pdf", pdfData)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// 图片冒充简历
	_, err = s.DropCV(ctx, &types.DropCVForm{Name: "X", Email: "a@b.com"}, "cv.pdf", pngData)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestListAndDownloadCVAdminOnly(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	resp, err := s.DropCV(ctx, &types.DropCVForm{Name: "Jordan", Email: "j@example.com"}, "cv.pdf", pdfData)
	require.NoError(t, err)

	_, err = s.ListCVs(ctx, types.Principal{}, 10, 0)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.ListCVs(ctx, jobseeker("alice"), 10, 0)
	assert.ErrorIs(t, err, ErrForbidden)

	list, err := s.ListCVs(ctx, admin(), 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)

	_, err = s.DownloadCV(ctx, jobseeker("alice"), resp.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	res, err := s.DownloadCV(ctx, admin(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, pdfData, res.Data)
	assert.Equal(t, "cv.pdf", res.FileName)

	_, err = s.DownloadCV(ctx, admin(), 9999)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
