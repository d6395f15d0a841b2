package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	"github.com/yasameenmsa/talentvault/pkg/internal/model"
	"github.com/yasameenmsa/talentvault/pkg/internal/repository"
	"github.com/yasameenmsa/talentvault/pkg/internal/storage/fs"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
)

// 内容嗅探需要真实的文件签名
var (
	pdfData = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF")
	pngData = []byte{
		0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a,
		0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x02, 0x00, 0x00, 0x00,
	}
)

func testStorageConfig() *configs.StorageConfig {
	return &configs.StorageConfig{
		BaseDir:         ".",
		PublicRoot:      configs.DefaultStoragePublicRoot,
		PrivateRoot:     configs.DefaultStoragePrivateRoot,
		LegacyRoot:      configs.DefaultStorageLegacyRoot,
		PublicURLPrefix: configs.DefaultStoragePublicURLPrefix,
		LegacyURLPrefix: configs.DefaultStorageLegacyURLPrefix,
		MaxUploadSize:   configs.DefaultStorageMaxUploadSize,
	}
}

// newTestService 组装基于内存文件系统和内存SQLite的服务实例.
func newTestService(t *testing.T) *FileService {
	t.Helper()

	fsClient, err := fs.NewWithFs(testStorageConfig(), afero.NewMemMapFs())
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.FileRecord{}, &model.CV{}))

	return &FileService{
		fsClient: fsClient,
		files:    repository.NewFileRepo(db),
		cvs:      repository.NewCVRepo(db),
	}
}

func jobseeker(id string) types.Principal {
	return types.Principal{UserID: id, Role: types.RoleJobseeker}
}

func admin() types.Principal {
	return types.Principal{UserID: "admin-1", Role: types.RoleAdmin}
}

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"resume", "resume"},
		{"my resume (final)", "my_resume_final"},
		{"my..//resume", "my_resume"},
		{"___", "file"},
		{"", "file"},
		{"CV2024", "CV2024"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, sanitizeFileName(c.in), "input %q", c.in)
	}
}

func TestNewFileIDOrdered(t *testing.T) {
	a := newFileID()
	b := newFileID()

	assert.Len(t, a, 26)
	assert.Less(t, a, b, "ids must be monotonically increasing")
}
