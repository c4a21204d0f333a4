package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/mocks"
	"dealspace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const pdfBody = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n"

// FileServiceTestSuite defines the test suite for FileService
type FileServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPersonRepo *mocks.MockPersonRepositoryInterface
	mockFileRepo   *mocks.MockFileRepositoryInterface
	mockStorage    *mocks.MockStorage
	fileService    *service.FileService

	ctx      context.Context
	actor    service.Actor
	personID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *FileServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.mockFileRepo = mocks.NewMockFileRepositoryInterface(suite.ctrl)
	suite.mockStorage = mocks.NewMockStorage(suite.ctrl)
	suite.fileService = service.NewFileService(suite.mockFileRepo, suite.mockPersonRepo, suite.mockStorage, 1024)

	suite.ctx = context.Background()
	suite.actor = service.Actor{UserID: uuid.New(), TenantID: uuid.New(), Role: models.UserRoleOwner}
	suite.personID = uuid.New()
	suite.mockPersonRepo.EXPECT().Exists(suite.actor.TenantID, suite.personID).Return(true, nil).AnyTimes()
	suite.mockStorage.EXPECT().URL(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) (string, error) {
		return "/storage/" + key, nil
	}).AnyTimes()
}

// TearDownTest cleans up after each test
func (suite *FileServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FileServiceTestSuite) upload(filename, body string) *service.FileUpload {
	return &service.FileUpload{Filename: filename, Size: int64(len(body)), Body: strings.NewReader(body)}
}

func (suite *FileServiceTestSuite) storedFile() *models.File {
	file := &models.File{Name: "contract.pdf", Path: "people/" + suite.personID.String() + "/old.pdf", MimeType: "application/pdf"}
	file.ID = uuid.New()
	file.PersonID = suite.personID
	return file
}

// TestCreateFile tests sniffing, storing and recording an upload
func (suite *FileServiceTestSuite) TestCreateFile() {
	var stored string
	suite.mockStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(len(pdfBody)), "application/pdf").
		DoAndReturn(func(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
			assert.True(suite.T(), strings.HasPrefix(key, "people/"+suite.personID.String()+"/"))
			assert.True(suite.T(), strings.HasSuffix(key, ".pdf"))
			data, err := io.ReadAll(body)
			stored = string(data)
			return err
		}).
		Times(1)
	suite.mockFileRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.fileService.Create(suite.ctx, suite.actor, suite.personID, suite.upload("Contract.PDF", pdfBody))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), pdfBody, stored)
	assert.Equal(suite.T(), "Contract.PDF", response.Name)
	assert.Equal(suite.T(), "application/pdf", response.MimeType)
	assert.Equal(suite.T(), models.FileTypeDocument, response.Type)
	assert.Equal(suite.T(), suite.actor.UserID, *response.UploadedBy)
	assert.True(suite.T(), strings.HasPrefix(response.URL, "/storage/people/"))
}

// TestCreateFileCustomName tests that a supplied name wins over the filename
func (suite *FileServiceTestSuite) TestCreateFileCustomName() {
	upload := suite.upload("scan.txt", "hello")
	upload.Name = " Signed offer "

	suite.mockStorage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(5), gomock.Any()).Return(nil).Times(1)
	suite.mockFileRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.fileService.Create(suite.ctx, suite.actor, suite.personID, upload)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Signed offer", response.Name)
}

// TestCreateFileTooLarge tests the upload size limit
func (suite *FileServiceTestSuite) TestCreateFileTooLarge() {
	upload := suite.upload("big.bin", strings.Repeat("x", 2048))

	_, err := suite.fileService.Create(suite.ctx, suite.actor, suite.personID, upload)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFileTooLarge)
}

// TestCreateFileRowFailureRemovesObject tests cleanup when the row cannot be written
func (suite *FileServiceTestSuite) TestCreateFileRowFailureRemovesObject() {
	var key string
	suite.mockStorage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k string, _ io.Reader, _ int64, _ string) error {
			key = k
			return nil
		}).Times(1)
	suite.mockFileRepo.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed")).Times(1)
	suite.mockStorage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, k string) error {
		assert.Equal(suite.T(), key, k)
		return nil
	}).Times(1)

	_, err := suite.fileService.Create(suite.ctx, suite.actor, suite.personID, suite.upload("a.pdf", pdfBody))

	assert.Error(suite.T(), err)
}

// TestUpdateFileRename tests renaming without new content
func (suite *FileServiceTestSuite) TestUpdateFileRename() {
	file := suite.storedFile()
	suite.mockFileRepo.EXPECT().GetByID(suite.personID, file.ID).Return(file, nil).Times(1)
	suite.mockFileRepo.EXPECT().Update(file).Return(nil).Times(1)

	response, err := suite.fileService.Update(suite.ctx, suite.actor, suite.personID, file.ID, "Final contract", nil)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Final contract", response.Name)
	assert.Equal(suite.T(), "people/"+suite.personID.String()+"/old.pdf", file.Path)
}

// TestUpdateFileReplaceContent tests that the old object goes away after the row is saved
func (suite *FileServiceTestSuite) TestUpdateFileReplaceContent() {
	file := suite.storedFile()
	oldPath := file.Path

	suite.mockFileRepo.EXPECT().GetByID(suite.personID, file.ID).Return(file, nil).Times(1)
	gomock.InOrder(
		suite.mockStorage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		suite.mockFileRepo.EXPECT().Update(file).Return(nil),
		suite.mockStorage.EXPECT().Delete(gomock.Any(), oldPath).Return(nil),
	)

	response, err := suite.fileService.Update(suite.ctx, suite.actor, suite.personID, file.ID, "", suite.upload("v2.pdf", pdfBody))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "v2.pdf", response.Name)
	assert.NotEqual(suite.T(), oldPath, file.Path)
}

// TestUpdateFileNothingToChange tests rejecting an empty update
func (suite *FileServiceTestSuite) TestUpdateFileNothingToChange() {
	_, err := suite.fileService.Update(suite.ctx, suite.actor, suite.personID, uuid.New(), "  ", nil)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeleteFileMissingObject tests that a missing stored object does not block the delete
func (suite *FileServiceTestSuite) TestDeleteFileMissingObject() {
	file := suite.storedFile()
	suite.mockFileRepo.EXPECT().GetByID(suite.personID, file.ID).Return(file, nil).Times(1)
	suite.mockStorage.EXPECT().Delete(gomock.Any(), file.Path).Return(apperrors.ErrObjectNotFound).Times(1)
	suite.mockFileRepo.EXPECT().Delete(suite.personID, file.ID).Return(nil).Times(1)

	assert.NoError(suite.T(), suite.fileService.Delete(suite.ctx, suite.actor, suite.personID, file.ID))
}

// TestDeleteFileStorageFailure tests that other storage errors abort the delete
func (suite *FileServiceTestSuite) TestDeleteFileStorageFailure() {
	file := suite.storedFile()
	suite.mockFileRepo.EXPECT().GetByID(suite.personID, file.ID).Return(file, nil).Times(1)
	suite.mockStorage.EXPECT().Delete(gomock.Any(), file.Path).Return(errors.New("access denied")).Times(1)

	assert.Error(suite.T(), suite.fileService.Delete(suite.ctx, suite.actor, suite.personID, file.ID))
}

// TestFileServiceTestSuite runs the test suite
func TestFileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FileServiceTestSuite))
}
