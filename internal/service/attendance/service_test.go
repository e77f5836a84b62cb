package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/attendance"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeStaffRepo struct {
	members map[string]staff.StaffMember
}

func (f *fakeStaffRepo) Create(ctx context.Context, s staff.StaffMember) (staff.StaffMember, error) {
	f.members[s.ID] = s
	return s, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (staff.StaffMember, error) {
	s, ok := f.members[id]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]staff.StaffMember, error) {
	var result []staff.StaffMember
	for _, s := range f.members {
		if s.IsActive {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeStaffRepo) ListActiveByCategory(ctx context.Context, category staff.RoleCategory) ([]staff.StaffMember, error) {
	var result []staff.StaffMember
	for _, s := range f.members {
		if s.IsActive && s.Category == category {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	return nil
}

func (f *fakeStaffRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.nextID++
	a.ID = time.Now().Format("20060102") + "-" + string(rune('a'+f.nextID))
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetOpenByStaffAndDate(ctx context.Context, staffID string, date time.Time) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.StaffID == staffID && r.Date.Equal(date) && r.ClockIn != nil && r.ClockOut == nil {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) CloseOut(ctx context.Context, id string, clockOut string, breakMinutes int, totalHours float64, dailyPay decimal.Decimal) (attendance.Attendance, error) {
	for i, r := range f.records {
		if r.ID == id {
			f.records[i].ClockOut = &clockOut
			f.records[i].BreakMinutes = breakMinutes
			f.records[i].TotalHours = totalHours
			f.records[i].DailyPay = dailyPay
			return f.records[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByStaffAndRange(ctx context.Context, staffID string, start, end time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, r := range f.records {
		if r.StaffID == staffID && !r.Date.Before(start) && !r.Date.After(end) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, r := range f.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeAppointmentRepo struct {
	appointments []appointment.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	f.appointments = append(f.appointments, a)
	return a, nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (appointment.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return appointment.Appointment{}, appointment.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]appointment.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) ListWorkedByDentist(ctx context.Context, dentistID string, start, end time.Time) ([]appointment.Appointment, error) {
	var result []appointment.Appointment
	for _, a := range f.appointments {
		if a.DentistID != dentistID || a.Date.Before(start) || a.Date.After(end) {
			continue
		}
		worked := a.BookingStatus == appointment.BookingCompleted ||
			a.BookingStatus == appointment.BookingConfirmed ||
			a.FlowStatus == appointment.FlowInTreatment
		if worked {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateBookingStatus(ctx context.Context, id string, status appointment.BookingStatus) error {
	return nil
}

func (f *fakeAppointmentRepo) AdvanceFlow(ctx context.Context, id string, from, to appointment.FlowStatus, assignedStaffID *string) (appointment.Appointment, error) {
	return appointment.Appointment{}, nil
}

func (f *fakeAppointmentRepo) ExpireOverdueFlows(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

// ===== HELPERS =====

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func rate(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func manualRecord(staffID, day, in, out string, breakMins int, hours float64) attendance.Attendance {
	return attendance.Attendance{
		StaffID:      staffID,
		Date:         date(day),
		ClockIn:      &in,
		ClockOut:     &out,
		BreakMinutes: breakMins,
		TotalHours:   hours,
	}
}

func workedAppointment(dentistID, day string, durationMinutes int) appointment.Appointment {
	return appointment.Appointment{
		DentistID:       dentistID,
		Date:            date(day),
		StartTime:       "09:00",
		DurationMinutes: &durationMinutes,
		BookingStatus:   appointment.BookingCompleted,
		FlowStatus:      appointment.FlowAwaitingPayment,
	}
}

func newTestService(staffRepo *fakeStaffRepo, attRepo *fakeAttendanceRepo, apptRepo *fakeAppointmentRepo) attendance.Service {
	return NewAttendanceService(attRepo, staffRepo, apptRepo, NewTimeCalculator())
}

// ===== PERIOD SUMMARY TESTS =====

func TestBuildPeriodSummary_ManualOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"s1": {ID: "s1", FullName: "Ana Reyes", Position: "Dental Assistant", Category: staff.CategoryAssistant, HourlyRate: rate("100"), IsActive: true},
	}}
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		manualRecord("s1", "2024-01-02", "08:00", "17:00", 60, 8),
		manualRecord("s1", "2024-01-03", "08:00", "19:00", 60, 10),
	}}

	svc := newTestService(staffRepo, attRepo, &fakeAppointmentRepo{})

	summaries, err := svc.BuildPeriodSummary(ctx, date("2024-01-01"), date("2024-01-15"), nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "s1", s.StaffID)
	assert.Equal(t, 2, s.DaysWorked)
	assert.InDelta(t, 18, s.TotalHours, 1e-9)
	assert.InDelta(t, 16, s.RegularHours, 1e-9)
	assert.InDelta(t, 2, s.OvertimeHours, 1e-9)
	// 16*100 + 2*100*1.25 = 1850
	assert.True(t, s.GrossPay.Equal(decimal.RequireFromString("1850")), "gross pay %s", s.GrossPay)
	assert.False(t, s.IsAutoTracked)
}

func TestBuildPeriodSummary_OmitsStaffWithoutRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"s1": {ID: "s1", FullName: "Ana Reyes", Category: staff.CategoryAssistant, HourlyRate: rate("100"), IsActive: true},
		"s2": {ID: "s2", FullName: "Ben Cruz", Category: staff.CategoryOther, HourlyRate: rate("90"), IsActive: true},
	}}
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		manualRecord("s1", "2024-01-02", "08:00", "16:00", 60, 7),
	}}

	svc := newTestService(staffRepo, attRepo, &fakeAppointmentRepo{})

	summaries, err := svc.BuildPeriodSummary(ctx, date("2024-01-01"), date("2024-01-15"), nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "s1", summaries[0].StaffID)
}

func TestBuildPeriodSummary_DentistAutoOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"d1": {ID: "d1", FullName: "Dr. Santos", Position: "Dentist", Category: staff.CategoryDentist, HourlyRate: rate("500"), IsActive: true},
	}}
	apptRepo := &fakeAppointmentRepo{appointments: []appointment.Appointment{
		workedAppointment("d1", "2024-01-03", 90),
		workedAppointment("d1", "2024-01-03", 60),
		workedAppointment("d1", "2024-01-04", 120),
	}}

	svc := newTestService(staffRepo, &fakeAttendanceRepo{}, apptRepo)

	summaries, err := svc.BuildPeriodSummary(ctx, date("2024-01-01"), date("2024-01-15"), nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.True(t, s.IsAutoTracked)
	assert.InDelta(t, 4.5, s.TotalHours, 1e-9)
	assert.Equal(t, 2, s.DaysWorked)
}

func TestBuildPeriodSummary_DentistDefaultDuration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"d1": {ID: "d1", FullName: "Dr. Santos", Category: staff.CategoryDentist, HourlyRate: rate("500"), IsActive: true},
	}}
	// Duration metadata missing: each appointment credits one hour
	apptRepo := &fakeAppointmentRepo{appointments: []appointment.Appointment{
		{DentistID: "d1", Date: date("2024-01-03"), BookingStatus: appointment.BookingConfirmed},
		{DentistID: "d1", Date: date("2024-01-04"), BookingStatus: appointment.BookingConfirmed},
	}}

	svc := newTestService(staffRepo, &fakeAttendanceRepo{}, apptRepo)

	summaries, err := svc.BuildPeriodSummary(ctx, date("2024-01-01"), date("2024-01-15"), nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 2, summaries[0].TotalHours, 1e-9)
}

func TestBuildPeriodSummary_DentistMerge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"d1": {ID: "d1", FullName: "Dr. Santos", Category: staff.CategoryDentist, HourlyRate: rate("100"), IsActive: true},
	}}
	// Manual summary: 20 hours over 3 days
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		manualRecord("d1", "2024-01-02", "08:00", "15:00", 0, 7),
		manualRecord("d1", "2024-01-03", "08:00", "15:00", 0, 7),
		manualRecord("d1", "2024-01-04", "08:00", "14:00", 0, 6),
	}}
	// Auto hours: 10 hours over 2 days
	apptRepo := &fakeAppointmentRepo{appointments: []appointment.Appointment{
		workedAppointment("d1", "2024-01-02", 300),
		workedAppointment("d1", "2024-01-03", 300),
	}}

	svc := newTestService(staffRepo, attRepo, apptRepo)

	summaries, err := svc.BuildPeriodSummary(ctx, date("2024-01-01"), date("2024-01-15"), nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.InDelta(t, 30, s.TotalHours, 1e-9)
	assert.Equal(t, 3, s.DaysWorked, "days worked is max(3,2), not the sum")
	assert.InDelta(t, 24, s.RegularHours, 1e-9)
	assert.InDelta(t, 6, s.OvertimeHours, 1e-9)
	// 24*100 + 6*100*1.25 = 3150
	assert.True(t, s.GrossPay.Equal(decimal.RequireFromString("3150")), "gross pay %s", s.GrossPay)
	assert.False(t, s.IsAutoTracked, "merged summary keeps its manual origin")
}

func TestBuildPeriodSummary_SingleStaffFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"s1": {ID: "s1", FullName: "Ana Reyes", Category: staff.CategoryAssistant, HourlyRate: rate("100"), IsActive: true},
		"s2": {ID: "s2", FullName: "Ben Cruz", Category: staff.CategoryHygienist, HourlyRate: rate("120"), IsActive: true},
	}}
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		manualRecord("s1", "2024-01-02", "08:00", "17:00", 60, 8),
		manualRecord("s2", "2024-01-02", "08:00", "17:00", 60, 8),
	}}

	svc := newTestService(staffRepo, attRepo, &fakeAppointmentRepo{})

	staffID := "s2"
	summaries, err := svc.BuildPeriodSummary(ctx, date("2024-01-01"), date("2024-01-15"), &staffID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "s2", summaries[0].StaffID)
}

// ===== CLOCK IN/OUT TESTS =====

func TestClockIn_RejectsSecondOpenRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"s1": {ID: "s1", FullName: "Ana Reyes", Category: staff.CategoryAssistant, HourlyRate: rate("100"), IsActive: true},
	}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(staffRepo, attRepo, &fakeAppointmentRepo{})

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{StaffID: "s1", Date: "2024-01-02", ClockIn: "08:00"})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{StaffID: "s1", Date: "2024-01-02", ClockIn: "09:00"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOut_ComputesHoursAndPay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"s1": {ID: "s1", FullName: "Ana Reyes", Category: staff.CategoryAssistant, HourlyRate: rate("100"), IsActive: true},
	}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(staffRepo, attRepo, &fakeAppointmentRepo{})

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{StaffID: "s1", Date: "2024-01-02", ClockIn: "08:00"})
	require.NoError(t, err)

	closed, err := svc.ClockOut(ctx, attendance.ClockOutRequest{StaffID: "s1", Date: "2024-01-02", ClockOut: "19:00"})
	require.NoError(t, err)
	assert.InDelta(t, 10, closed.TotalHours, 1e-9)
	// 8*100 + 2*100*1.25 = 1050
	assert.True(t, closed.DailyPay.Equal(decimal.RequireFromString("1050")), "daily pay %s", closed.DailyPay)
}

func TestClockOut_WithoutOpenRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"s1": {ID: "s1", FullName: "Ana Reyes", Category: staff.CategoryAssistant, HourlyRate: rate("100"), IsActive: true},
	}}
	svc := newTestService(staffRepo, &fakeAttendanceRepo{}, &fakeAppointmentRepo{})

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{StaffID: "s1", Date: "2024-01-02", ClockOut: "17:00"})
	assert.ErrorIs(t, err, attendance.ErrNoOpenRecord)
}

func TestListByRange_AllStaffInWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		manualRecord("s1", "2024-01-02", "08:00", "17:00", 60, 8),
		manualRecord("s2", "2024-01-03", "08:00", "17:00", 60, 8),
		manualRecord("s1", "2024-01-20", "08:00", "17:00", 60, 8),
	}}
	svc := newTestService(&fakeStaffRepo{members: map[string]staff.StaffMember{}}, attRepo, &fakeAppointmentRepo{})

	records, err := svc.ListByRange(ctx, date("2024-01-01"), date("2024-01-15"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "s1", records[0].StaffID)
	assert.Equal(t, "s2", records[1].StaffID)
}
