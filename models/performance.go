package models

type PerformanceCriterion struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Weight      int    `json:"weight"`
	IsActive    bool   `json:"is_active"`
}

type PerformanceScore struct {
	ID            int64   `json:"id"`
	Review        int64   `json:"review"`
	Criteria      int64   `json:"criteria"`
	CriteriaName  string  `json:"criteria_name"`
	Score         Decimal `json:"score"`
	WeightedScore Decimal `json:"weighted_score"`
	Comments      string  `json:"comments,omitempty"`
}

// AverageScore is one row of /performance/scores/average_scores/.
type AverageScore struct {
	CriteriaName string  `json:"criteria__name"`
	AverageScore Decimal `json:"average_score"`
}

type PerformanceReview struct {
	ID                  int64              `json:"id"`
	Employee            int64              `json:"employee"`
	EmployeeDetails     *EmployeeRef       `json:"employee_details,omitempty"`
	Reviewer            *int64             `json:"reviewer,omitempty"`
	ReviewerDetails     *EmployeeRef       `json:"reviewer_details,omitempty"`
	ReviewType          string             `json:"review_type"`
	ReviewPeriodStart   string             `json:"review_period_start"`
	ReviewPeriodEnd     string             `json:"review_period_end"`
	Status              string             `json:"status"`
	OverallScore        Decimal            `json:"overall_score,omitempty"`
	Summary             string             `json:"summary,omitempty"`
	Strengths           string             `json:"strengths,omitempty"`
	AreasForImprovement string             `json:"areas_for_improvement,omitempty"`
	EmployeeComments    string             `json:"employee_comments,omitempty"`
	ReviewerComments    string             `json:"reviewer_comments,omitempty"`
	Scores              []PerformanceScore `json:"scores,omitempty"`
}

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
	GoalCancelled  GoalStatus = "cancelled"
)

type Goal struct {
	ID              int64        `json:"id"`
	Employee        int64        `json:"employee"`
	EmployeeDetails *EmployeeRef `json:"employee_details,omitempty"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	StartDate       string       `json:"start_date"`
	DueDate         string       `json:"due_date"`
	Priority        string       `json:"priority"`
	Status          GoalStatus   `json:"status"`
	Progress        int          `json:"progress"`
}

// GoalUpdate is a partial update of a goal; unset fields are left alone.
type GoalUpdate struct {
	Status   GoalStatus `json:"status,omitempty"`
	Progress *int       `json:"progress,omitempty"`
}

// StatusMessage is the {"status": "..."} answer of workflow actions.
type StatusMessage struct {
	Status string `json:"status"`
}
