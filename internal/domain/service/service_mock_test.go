package service

import (
	"context"
	"testing"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/astro-attendance/attendance-bot/internal/domain/registry"
	"github.com/astro-attendance/attendance-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAdminID = int64(42)

var testOptions = []entity.ResponseOption{
	{Text: "Був", Marker: "✅"},
	{Text: "Не був", Marker: "❌"},
	{Text: "Хворів", Marker: "🤒"},
}

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockPollRepo    *mocks.MockPollRepo
	mockMarkRepo    *mocks.MockMarkRepo
	mockChatClient  *mocks.MockChatClient
	mockSheets      *mocks.MockSpreadsheetClient
	mockWorksheet   *mocks.MockWorksheet
	mockAlerter     *mocks.MockAlerter
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	pollRepo := mocks.NewMockPollRepo(ctrl)
	dm.EXPECT().Poll().Return(pollRepo).AnyTimes()

	markRepo := mocks.NewMockMarkRepo(ctrl)
	dm.EXPECT().Mark().Return(markRepo).AnyTimes()

	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	worksheet := mocks.NewMockWorksheet(ctrl)
	worksheet.EXPECT().Title().Return("Квітень").AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockPollRepo:    pollRepo,
		mockMarkRepo:    markRepo,
		mockChatClient:  mocks.NewMockChatClient(ctrl),
		mockSheets:      mocks.NewMockSpreadsheetClient(ctrl),
		mockWorksheet:   worksheet,
		mockAlerter:     mocks.NewMockAlerter(ctrl),
	}

	return
}

// newTestInstance wires the services over the mocks with the given tenants
func newTestInstance(t *testing.T, m allMocks, tenants ...entity.Tenant) (*Instance, *registry.Polls) {
	t.Helper()

	tenantRegistry, err := registry.NewTenants(tenants)
	require.NoError(t, err)

	polls := registry.NewPolls()
	instance := NewInstance(Dependencies{
		Tenants:     tenantRegistry,
		Polls:       polls,
		Chat:        m.mockChatClient,
		Sheets:      m.mockSheets,
		DataManager: m.mockDataManager,
		Alerter:     m.mockAlerter,
		Options:     testOptions,
		AdminID:     testAdminID,
		Location:    time.UTC,
	})
	require.NotNil(t, instance.Attendance)
	require.NotNil(t, instance.Scheduler)

	return instance, polls
}

func astroTenant() entity.Tenant {
	return entity.Tenant{
		Title:            "Astro-22",
		SpreadsheetTitle: "Відвідуваність астрономів, 1 маг 22/23",
		ChatID:           -1001429649964,
		Students: []entity.Student{
			{TelegramID: 111, Name: "Ivanenko"},
			{TelegramID: 222, Name: "Petrenko"},
		},
		Head:         "@starosta",
		GroupAddress: "Астрономи",
	}
}

func lectureDay() time.Time {
	return time.Date(2023, time.April, 4, 0, 0, 0, 0, time.UTC)
}
