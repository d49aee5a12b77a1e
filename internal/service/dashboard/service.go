package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/timetracking"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	recentRequestsLimit   = 5
	detailRequestsLimit   = 10
	pendingRequestsLimit  = 10
	unreadPreviewLimit    = 3
	topWorkersLimit       = 10
	upcomingLeaveDays     = 30
	workerHoursWindowDays = 7
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employees     employee.EmployeeRepository
	requests      request.RequestService
	notifications notification.Service
	timeTracking  timetracking.TimeTrackingService
	documents     document.DocumentService
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	employeeRepository employee.EmployeeRepository,
	requestService request.RequestService,
	notificationService notification.Service,
	timeTrackingService timetracking.TimeTrackingService,
	documentService document.DocumentService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		employees:           employeeRepository,
		requests:            requestService,
		notifications:       notificationService,
		timeTracking:        timeTrackingService,
		documents:           documentService,
	}
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, employeeID string) (dashboard.EmployeeDashboardResponse, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	resp := dashboard.EmployeeDashboardResponse{
		Employee: employee.NewEmployeeResponse(emp),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.requests.CountByStatus(gCtx, &employeeID)
		if err != nil {
			return err
		}
		resp.Requests = counts
		return nil
	})

	g.Go(func() error {
		recent, err := s.requests.List(gCtx, request.RequestFilter{EmployeeID: &employeeID, Limit: recentRequestsLimit})
		if err != nil {
			return err
		}
		resp.RecentRequests = recent
		return nil
	})

	g.Go(func() error {
		unread, err := s.notifications.List(gCtx, employeeID, true, unreadPreviewLimit)
		if err != nil {
			return err
		}
		resp.UnreadNotifications = unread.Notifications
		resp.UnreadCount = unread.UnreadCount
		return nil
	})

	g.Go(func() error {
		today, err := s.timeTracking.Today(gCtx, employeeID)
		if err != nil {
			return err
		}
		resp.ClockedIn = today.ClockedIn
		resp.TodayHours = timetracking.RoundHours(today.TotalHours, 1)
		return nil
	})

	g.Go(func() error {
		week, err := s.timeTracking.WeekHours(gCtx, employeeID)
		if err != nil {
			return err
		}
		resp.WeekHours = week
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to build employee dashboard: %w", err)
	}

	return resp, nil
}

// GetHRDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetHRDashboard(ctx context.Context) (dashboard.HRDashboardResponse, error) {
	now := s.timeTracking.Now()
	today := timetracking.DateOf(now)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	tomorrow := today.AddDate(0, 0, 1)
	horizon := today.AddDate(0, 0, upcomingLeaveDays)
	approved := document.StatusApproved
	pending := request.StatusPending

	resp := dashboard.HRDashboardResponse{GeneratedAt: now}

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headcount and salary per department
	g.Go(func() error {
		employees, err := s.employees.List(gCtx, employee.EmployeeFilter{})
		if err != nil {
			return err
		}
		resp.TotalEmployees = len(employees)
		resp.Departments, resp.TotalSalary = departmentStats(employees)
		return nil
	})

	// 2. Requests
	g.Go(func() error {
		counts, err := s.requests.CountByStatus(gCtx, nil)
		if err != nil {
			return err
		}
		resp.Requests = counts
		return nil
	})

	g.Go(func() error {
		list, err := s.requests.List(gCtx, request.RequestFilter{Status: &pending, Limit: pendingRequestsLimit})
		if err != nil {
			return err
		}
		resp.PendingRequests = list
		return nil
	})

	// 3. Approved leave
	g.Go(func() error {
		onLeave, err := s.documents.ListLeaveRecords(gCtx, document.LeaveRecordFilter{Status: &approved, ActiveOn: &today})
		if err != nil {
			return err
		}
		resp.Leaves.OnLeaveToday = onLeave
		return nil
	})

	g.Go(func() error {
		month, err := s.documents.ListLeaveRecords(gCtx, document.LeaveRecordFilter{Status: &approved, StartFrom: &monthStart, StartTo: &monthEnd})
		if err != nil {
			return err
		}
		resp.Leaves.ThisMonth = len(month)
		return nil
	})

	g.Go(func() error {
		upcoming, err := s.documents.ListLeaveRecords(gCtx, document.LeaveRecordFilter{Status: &approved, StartFrom: &tomorrow, StartTo: &horizon})
		if err != nil {
			return err
		}
		resp.Leaves.Upcoming = upcoming
		return nil
	})

	// 4. Time ledger
	g.Go(func() error {
		workers, err := s.DashboardRepository.GetWorkerHours(gCtx, now.AddDate(0, 0, -workerHoursWindowDays), 0)
		if err != nil {
			return err
		}
		var total float64
		for _, w := range workers {
			total += w.Hours
		}
		resp.WeekHours = timetracking.RoundHours(total, 2)

		if len(workers) > topWorkersLimit {
			workers = workers[:topWorkersLimit]
		}
		resp.TopWorkers = make([]dashboard.WorkerHoursResponse, 0, len(workers))
		for _, w := range workers {
			resp.TopWorkers = append(resp.TopWorkers, dashboard.WorkerHoursResponse{
				EmployeeID:   w.EmployeeID,
				EmployeeName: w.EmployeeName,
				Hours:        w.Hours,
			})
		}
		return nil
	})

	g.Go(func() error {
		clockedIn, err := s.DashboardRepository.GetClockedIn(gCtx, today)
		if err != nil {
			return err
		}
		resp.WorkingNow = make([]dashboard.ClockedInResponse, 0, len(clockedIn))
		for _, c := range clockedIn {
			resp.WorkingNow = append(resp.WorkingNow, dashboard.ClockedInResponse{
				EmployeeID:   c.EmployeeID,
				EmployeeName: c.EmployeeName,
				ClockIn:      c.ClockIn,
			})
		}
		return nil
	})

	// 5. Recruitment
	g.Go(func() error {
		stats, err := s.DashboardRepository.GetRecruitmentStats(gCtx)
		if err != nil {
			return err
		}
		resp.Recruitment = dashboard.RecruitmentSummary{
			ActiveVacancies: stats.ActiveVacancies,
			TotalCandidates: stats.TotalCandidates,
			NewCandidates:   stats.NewCandidates,
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.HRDashboardResponse{}, fmt.Errorf("failed to build hr dashboard: %w", err)
	}

	return resp, nil
}

// GetEmployeeDetail implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDetail(ctx context.Context, employeeID string) (dashboard.EmployeeDetailResponse, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDetailResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	today := timetracking.DateOf(s.timeTracking.Now())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	resp := dashboard.EmployeeDetailResponse{
		Employee: employee.NewEmployeeResponse(emp),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		recent, err := s.requests.List(gCtx, request.RequestFilter{EmployeeID: &employeeID, Limit: detailRequestsLimit})
		if err != nil {
			return err
		}
		resp.RecentRequests = recent
		return nil
	})

	g.Go(func() error {
		history, err := s.timeTracking.History(gCtx, timetracking.TimeEntryFilter{EmployeeID: &employeeID, From: &monthStart, To: &today})
		if err != nil {
			return err
		}
		resp.MonthEntries = history.Entries
		resp.MonthHours = history.TotalHours
		return nil
	})

	g.Go(func() error {
		contract, err := s.documents.LatestContract(gCtx, employeeID)
		if err != nil {
			if errors.Is(err, document.ErrContractNotFound) {
				return nil
			}
			return err
		}
		resp.LatestContract = &contract
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeDetailResponse{}, fmt.Errorf("failed to build employee detail: %w", err)
	}

	return resp, nil
}

// departmentStats groups employees by department, ordered by name, and
// returns the evaluated salary total over all of them.
func departmentStats(employees []employee.Employee) ([]dashboard.DepartmentStat, decimal.Decimal) {
	byDept := make(map[string]*dashboard.DepartmentStat)
	total := decimal.Zero

	for _, emp := range employees {
		salary := emp.Salary()
		total = total.Add(salary)

		stat, ok := byDept[emp.Department]
		if !ok {
			stat = &dashboard.DepartmentStat{Department: emp.Department, TotalSalary: decimal.Zero}
			byDept[emp.Department] = stat
		}
		stat.Employees++
		stat.TotalSalary = stat.TotalSalary.Add(salary)
	}

	stats := make([]dashboard.DepartmentStat, 0, len(byDept))
	for _, stat := range byDept {
		stat.AverageSalary = stat.TotalSalary.Div(decimal.NewFromInt(int64(stat.Employees))).Round(2)
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Department < stats[j].Department })

	return stats, total
}
