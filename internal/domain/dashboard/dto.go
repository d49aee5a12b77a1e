package dashboard

import (
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/timetracking"
	"github.com/shopspring/decimal"
)

// ========== EMPLOYEE DASHBOARD ==========

type EmployeeDashboardResponse struct {
	Employee            employee.EmployeeResponse           `json:"employee"`
	Requests            request.StatusCounts                `json:"requests"`
	RecentRequests      []request.RequestResponse           `json:"recent_requests"`
	UnreadNotifications []notification.NotificationResponse `json:"unread_notifications"`
	UnreadCount         int                                 `json:"unread_count"`
	ClockedIn           bool                                `json:"clocked_in"`
	TodayHours          float64                             `json:"today_hours"` // includes the open session
	WeekHours           float64                             `json:"week_hours"`
}

// ========== HR DASHBOARD ==========

type DepartmentStat struct {
	Department    string          `json:"department"`
	Employees     int             `json:"employees"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
	AverageSalary decimal.Decimal `json:"average_salary"`
}

type WorkerHoursResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Hours        float64 `json:"hours"`
}

type ClockedInResponse struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ClockIn      time.Time `json:"clock_in"`
}

type LeaveSummary struct {
	OnLeaveToday []document.LeaveRecordResponse `json:"on_leave_today"`
	ThisMonth    int                            `json:"this_month"`
	Upcoming     []document.LeaveRecordResponse `json:"upcoming"`
}

type RecruitmentSummary struct {
	ActiveVacancies int64 `json:"active_vacancies"`
	TotalCandidates int64 `json:"total_candidates"`
	NewCandidates   int64 `json:"new_candidates"`
}

type HRDashboardResponse struct {
	TotalEmployees  int                       `json:"total_employees"`
	TotalSalary     decimal.Decimal           `json:"total_salary"`
	Departments     []DepartmentStat          `json:"departments"`
	Requests        request.StatusCounts      `json:"requests"`
	PendingRequests []request.RequestResponse `json:"pending_requests"`
	Leaves          LeaveSummary              `json:"leaves"`
	WeekHours       float64                   `json:"week_hours"` // last 7 days, all employees
	WorkingNow      []ClockedInResponse       `json:"working_now"`
	TopWorkers      []WorkerHoursResponse     `json:"top_workers"`
	Recruitment     RecruitmentSummary        `json:"recruitment"`
	GeneratedAt     time.Time                 `json:"generated_at"`
}

// ========== EMPLOYEE DETAIL ==========

type EmployeeDetailResponse struct {
	Employee       employee.EmployeeResponse        `json:"employee"`
	RecentRequests []request.RequestResponse        `json:"recent_requests"`
	MonthEntries   []timetracking.TimeEntryResponse `json:"month_entries"`
	MonthHours     float64                          `json:"month_hours"`
	LatestContract *document.ContractResponse       `json:"latest_contract,omitempty"`
}
