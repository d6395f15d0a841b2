package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yasameenmsa/talentvault/pkg/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.FileRecord{}, &model.CV{}))

	return db
}

func TestFileRepoInsertAndFind(t *testing.T) {
	repo := NewFileRepo(newTestDB(t))
	ctx := context.Background()

	rec := &model.FileRecord{
		ID:           "01J0000000000000000000TEST",
		FileName:     "1700000000_resume.pdf",
		OriginalName: "resume.pdf",
		URL:          "storage/uploads/cvs/1700000000_resume.pdf",
		FilePath:     "storage/uploads/cvs/1700000000_resume.pdf",
		Size:         1024,
		MimeType:     "application/pdf",
		FileType:     model.FileTypeCV,
		UploadedBy:   "user-1",
		UserID:       "user-1",
	}
	require.NoError(t, repo.Insert(ctx, rec))

	got, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", got.OriginalName)
	assert.Equal(t, model.FileTypeCV, got.FileType)

	byPath, err := repo.FindByPath(ctx, rec.FilePath)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, byPath.ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileRepoFindByPathMatchesURL(t *testing.T) {
	repo := NewFileRepo(newTestDB(t))
	ctx := context.Background()

	rec := &model.FileRecord{
		ID:       "01J0000000000000000000URL1",
		URL:      "/storage/uploads/jobs/1700000000_banner.png",
		FilePath: "public/storage/uploads/jobs/1700000000_banner.png",
		FileType: model.FileTypeJobImage,
		IsPublic: true,
	}
	require.NoError(t, repo.Insert(ctx, rec))

	got, err := repo.FindByPath(ctx, rec.URL)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestFileRepoListFilters(t *testing.T) {
	repo := NewFileRepo(newTestDB(t))
	ctx := context.Background()

	pub := true

	seed := []model.FileRecord{
		{ID: "01J000000000000000000000A1", FileType: model.FileTypeCV, UploadedBy: "alice", UserID: "alice"},
		{ID: "01J000000000000000000000A2", FileType: model.FileTypeCV, UploadedBy: "bob", UserID: "bob"},
		{ID: "01J000000000000000000000A3", FileType: model.FileTypeJobImage, UploadedBy: "alice", JobID: "job-9", IsPublic: true},
	}
	for i := range seed {
		require.NoError(t, repo.Insert(ctx, &seed[i]))
	}

	recs, total, err := repo.List(ctx, FileQuery{UploadedBy: "alice"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, recs, 2)

	recs, total, err = repo.List(ctx, FileQuery{FileType: model.FileTypeCV, UploadedBy: "bob"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "bob", recs[0].UploadedBy)

	recs, total, err = repo.List(ctx, FileQuery{IsPublic: &pub})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "job-9", recs[0].JobID)

	recs, _, err = repo.List(ctx, FileQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestFileRepoUpdateAndDelete(t *testing.T) {
	repo := NewFileRepo(newTestDB(t))
	ctx := context.Background()

	rec := &model.FileRecord{
		ID:       "01J000000000000000000000B1",
		FileName: "old.pdf",
		FilePath: "storage/uploads/documents/old.pdf",
		FileType: model.FileTypeDocument,
	}
	require.NoError(t, repo.Insert(ctx, rec))

	rec.FileName = "new.pdf"
	rec.IsPublic = true
	require.NoError(t, repo.Update(ctx, rec))

	got, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "new.pdf", got.FileName)
	assert.True(t, got.IsPublic)

	require.NoError(t, repo.Delete(ctx, rec.ID))
	_, err = repo.FindByID(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, rec), ErrNotFound)
}

func TestFileRepoDeleteByPaths(t *testing.T) {
	repo := NewFileRepo(newTestDB(t))
	ctx := context.Background()

	seed := []model.FileRecord{
		{ID: "01J000000000000000000000C1", FilePath: "public/uploads/temp/a.pdf", URL: "/uploads/temp/a.pdf"},
		{ID: "01J000000000000000000000C2", FilePath: "public/uploads/temp/b.pdf", URL: "/uploads/temp/b.pdf"},
		{ID: "01J000000000000000000000C3", FilePath: "storage/uploads/cvs/keep.pdf", URL: "storage/uploads/cvs/keep.pdf"},
	}
	for i := range seed {
		require.NoError(t, repo.Insert(ctx, &seed[i]))
	}

	// URL 与物理路径任一匹配都应删除
	n, err := repo.DeleteByPaths(ctx, []string{"public/uploads/temp/a.pdf", "/uploads/temp/b.pdf"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, total, err := repo.List(ctx, FileQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	n, err = repo.DeleteByPaths(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCVRepo(t *testing.T) {
	repo := NewCVRepo(newTestDB(t))
	ctx := context.Background()

	cv := &model.CV{
		Name:         "Jordan",
		Email:        "jordan@example.com",
		JobID:        "job-1",
		Path:         "storage/uploads/cvs/cv_jordan_1700000000.pdf",
		OriginalName: "jordan-cv.pdf",
		Size:         2048,
		MimeType:     "application/pdf",
	}
	require.NoError(t, repo.Insert(ctx, cv))
	require.NotZero(t, cv.ID)

	got, err := repo.FindByID(ctx, cv.ID)
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", got.Email)

	cvs, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, cvs, 1)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
