package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing/iotest"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/repository"
	"dealspace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const importCSV = "\xEF\xBB\xBFFirst Name,Last Name,Email,Phone,Stage,Price,Tags\n" +
	"Ada,Lovelace,ada@example.com,+1 555 0100,Lead,\"$1,200\",buyer;hot\n" +
	",Nobody,nobody@example.com,,,,\n" +
	"Grace,Hopper,grace@example.com,,Unknown,,\n" +
	"Alan,Turing,not-an-email,,,,\n" +
	"Linus,Price,,,lead,abc,\n" +
	",,,,,,\n" +
	"Linus,Torvalds,linus@example.com,,,,\n"

func (suite *PersonServiceTestSuite) TestImport_SkipsInvalidRows() {
	leadStage := &models.Stage{TenantID: suite.tenant.ID, Name: "Lead"}
	leadStage.ID = uuid.New()
	rule := &models.LeadFlowRule{Name: "Zillow buyers"}

	suite.expectQuota(0)
	suite.mockStageRepo.EXPECT().GetByName(suite.tenant.ID, "Lead").Return(leadStage, nil)
	suite.mockStageRepo.EXPECT().GetByName(suite.tenant.ID, "Unknown").Return(nil, gorm.ErrRecordNotFound)
	suite.mockStageRepo.EXPECT().GetByID(suite.tenant.ID, leadStage.ID).Return(leadStage, nil)
	suite.mockStageRepo.EXPECT().GetDefault(suite.tenant.ID).Return(suite.defaultStage(), nil)

	var created []*models.Person
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Person) error {
		p.ID = uuid.New()
		created = append(created, p)
		return nil
	}).Times(2)
	suite.mockLeadFlow.EXPECT().ProcessLead(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Person) (*models.LeadFlowRule, error) {
			if p.FirstName == "Ada" {
				return rule, nil
			}
			return nil, nil
		}).Times(2)

	result, err := suite.personService.Import(context.Background(), suite.owner, "people.csv", strings.NewReader(importCSV))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, result.Imported)
	assert.Equal(suite.T(), 4, result.Failed)
	assert.Equal(suite.T(), 1, result.LeadFlowProcessed)

	rows := make([]int, len(result.Errors))
	for i, e := range result.Errors {
		rows[i] = e.Row
	}
	assert.Equal(suite.T(), []int{3, 4, 5, 6}, rows)
	assert.Contains(suite.T(), result.Errors[1].Message, `unknown stage "Unknown"`)
	assert.Contains(suite.T(), result.Errors[3].Message, `invalid price "abc"`)

	require.Len(suite.T(), created, 2)
	ada := created[0]
	assert.Equal(suite.T(), leadStage.ID, *ada.StageID)
	assert.Equal(suite.T(), "1200", ada.Price.String())
	assert.Equal(suite.T(), []string{"buyer", "hot"}, ada.TagNames())
	assert.Equal(suite.T(), suite.stageID, *created[1].StageID)
}

func (suite *PersonServiceTestSuite) TestImport_StopsAtPlanLimit() {
	csv := "first_name,email\nAda,ada@example.com\nGrace,grace@example.com\n"

	suite.expectQuota(499)
	suite.mockStageRepo.EXPECT().GetDefault(suite.tenant.ID).Return(suite.defaultStage(), nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockLeadFlow.EXPECT().ProcessLead(gomock.Any(), gomock.Any()).Return(nil, nil)

	result, err := suite.personService.Import(context.Background(), suite.owner, "people.csv", strings.NewReader(csv))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Imported)
	assert.Equal(suite.T(), 1, result.Failed)
	assert.Equal(suite.T(), 3, result.Errors[0].Row)
}

func (suite *PersonServiceTestSuite) TestImport_UnsupportedFormat() {
	_, err := suite.personService.Import(context.Background(), suite.owner, "people.pdf", strings.NewReader("%PDF"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnsupportedImportFormat)
}

func (suite *PersonServiceTestSuite) TestImport_CorruptFile() {
	tests := []struct {
		name     string
		filename string
		content  io.Reader
	}{
		{"workbook that is not a zip archive", "people.xlsx", strings.NewReader("not a zip")},
		{"csv upload cut off mid-stream", "people.csv", iotest.ErrReader(errors.New("unexpected EOF"))},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			result, err := suite.personService.Import(context.Background(), suite.owner, tt.filename, tt.content)

			assert.Nil(suite.T(), result)
			var fieldErr *apperrors.ValidationError
			require.ErrorAs(suite.T(), err, &fieldErr)
			assert.Equal(suite.T(), "file", fieldErr.Field)
		})
	}
}

func (suite *PersonServiceTestSuite) TestImport_EmptyFile() {
	_, err := suite.personService.Import(context.Background(), suite.owner, "people.csv", strings.NewReader(""))

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PersonServiceTestSuite) TestTemplate() {
	var buf bytes.Buffer
	require.NoError(suite.T(), suite.personService.Template(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows("People")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), service.TemplateHeaders, rows[0])
}

func (suite *PersonServiceTestSuite) TestExport_AgentScoped() {
	person := models.Person{FirstName: "Ada", LastName: "Lovelace", Source: "Zillow"}
	person.ID = uuid.New()
	person.Emails = []models.Email{{Value: "ada@example.com", IsPrimary: true}}

	suite.mockRepo.EXPECT().List(suite.tenant.ID, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, filter repository.PersonFilter) ([]models.Person, int64, error) {
			require.NotNil(suite.T(), filter.VisibleTo)
			assert.Equal(suite.T(), suite.agent.UserID, *filter.VisibleTo)
			assert.Empty(suite.T(), filter.IDs)
			return []models.Person{person}, int64(1), nil
		})

	var buf bytes.Buffer
	require.NoError(suite.T(), suite.personService.Export(suite.agent, &service.BulkIDsRequest{}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows("People")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 2)
	assert.Equal(suite.T(), "id", rows[0][0])
	assert.Equal(suite.T(), person.ID.String(), rows[1][0])
	assert.Equal(suite.T(), "ada@example.com", rows[1][3])
}
