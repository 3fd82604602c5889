package service

import (
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/astro-attendance/attendance-bot/internal/domain/registry"
)

// Dependencies are the collaborators owned by the composition root
type Dependencies struct {
	Tenants     *registry.Tenants
	Polls       *registry.Polls
	Chat        contract.ChatClient
	Sheets      contract.SpreadsheetClient
	DataManager contract.DataManager
	Alerter     contract.Alerter
	Options     []entity.ResponseOption
	AdminID     int64
	Location    *time.Location
}

type Instance struct {
	Attendance *attendanceService
	Scheduler  *scheduler
}

func NewInstance(deps Dependencies) *Instance {
	attendance := newAttendance(deps)

	return &Instance{
		Attendance: attendance,
		Scheduler:  newScheduler(deps.Tenants, attendance, deps.Location),
	}
}
