package taxonomy

// ProjectStatus and ProcessStep are independent axes: a project can be
// on hold at any stage of the pipeline.
type ProjectStatus string

const (
	StatusActive    ProjectStatus = "active"
	StatusOnHold    ProjectStatus = "on_hold"
	StatusCompleted ProjectStatus = "completed"
	StatusCancelled ProjectStatus = "cancelled"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusActive, StatusOnHold, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s ProjectStatus) Label() string {
	switch s {
	case StatusActive:
		return "진행중"
	case StatusOnHold:
		return "보류"
	case StatusCompleted:
		return "완료"
	case StatusCancelled:
		return "취소"
	}
	return string(s)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "낮음"
	case PriorityMedium:
		return "보통"
	case PriorityHigh:
		return "높음"
	case PriorityUrgent:
		return "긴급"
	}
	return string(p)
}

type DocType string

const (
	DocEstimate   DocType = "estimate"
	DocContract   DocType = "contract"
	DocOrder      DocType = "order"
	DocInvoice    DocType = "invoice"
	DocSettlement DocType = "settlement"
)

func (d DocType) Valid() bool {
	switch d {
	case DocEstimate, DocContract, DocOrder, DocInvoice, DocSettlement:
		return true
	}
	return false
}

func (d DocType) Label() string {
	switch d {
	case DocEstimate:
		return "견적서"
	case DocContract:
		return "계약서"
	case DocOrder:
		return "발주서"
	case DocInvoice:
		return "세금계산서"
	case DocSettlement:
		return "정산서"
	}
	return string(d)
}

type DocStatus string

const (
	DocDraft    DocStatus = "draft"
	DocPending  DocStatus = "pending"
	DocApproved DocStatus = "approved"
	DocRejected DocStatus = "rejected"
)

func (s DocStatus) Valid() bool {
	switch s {
	case DocDraft, DocPending, DocApproved, DocRejected:
		return true
	}
	return false
}

func (s DocStatus) Label() string {
	switch s {
	case DocDraft:
		return "초안"
	case DocPending:
		return "검토중"
	case DocApproved:
		return "승인"
	case DocRejected:
		return "반려"
	}
	return string(s)
}

type RiskLevel string

const (
	RiskInfo     RiskLevel = "info"
	RiskWarning  RiskLevel = "warning"
	RiskCritical RiskLevel = "critical"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskInfo, RiskWarning, RiskCritical:
		return true
	}
	return false
}

func (r RiskLevel) Label() string {
	switch r {
	case RiskInfo:
		return "정보"
	case RiskWarning:
		return "주의"
	case RiskCritical:
		return "위험"
	}
	return string(r)
}

type LogType string

const (
	LogDaily    LogType = "daily"
	LogIssue    LogType = "issue"
	LogProgress LogType = "progress"
	LogPhoto    LogType = "photo"
)

func (t LogType) Valid() bool {
	switch t {
	case LogDaily, LogIssue, LogProgress, LogPhoto:
		return true
	}
	return false
}

func (t LogType) Label() string {
	switch t {
	case LogDaily:
		return "일일보고"
	case LogIssue:
		return "이슈"
	case LogProgress:
		return "진행상황"
	case LogPhoto:
		return "사진"
	}
	return string(t)
}

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

func (r UserRole) Label() string {
	switch r {
	case RoleAdmin:
		return "관리자"
	case RoleManager:
		return "매니저"
	case RoleStaff:
		return "직원"
	}
	return string(r)
}

// Level orders roles for permission checks: admin 3, manager 2, staff 1.
func (r UserRole) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleStaff:
		return 1
	}
	return 0
}

// EventType tags schedule entries. The schedule feature itself is a
// future phase; the table is migrated so external tools can seed it.
type EventType string

const (
	EventMilestone  EventType = "milestone"
	EventMeeting    EventType = "meeting"
	EventInspection EventType = "inspection"
	EventDelivery   EventType = "delivery"
)

func (e EventType) Valid() bool {
	switch e {
	case EventMilestone, EventMeeting, EventInspection, EventDelivery:
		return true
	}
	return false
}

type InsightType string

const (
	InsightRisk           InsightType = "risk"
	InsightRecommendation InsightType = "recommendation"
	InsightSummary        InsightType = "summary"
)

func (t InsightType) Valid() bool {
	switch t {
	case InsightRisk, InsightRecommendation, InsightSummary:
		return true
	}
	return false
}
