package model

// MemberBreakdown counts active members per role; absent roles stay 0.
type MemberBreakdown struct {
	Owners  int `json:"owners"`
	Mentors int `json:"mentors"`
	Coaches int `json:"coaches"`
	Members int `json:"members"`
	Viewers int `json:"viewers"`
}

// TeamDashboard is computed on demand and never persisted.
type TeamDashboard struct {
	TeamId                 string          `json:"teamId"`
	TotalMembers           int64           `json:"totalMembers"`
	TotalJobsTracked       int64           `json:"totalJobsTracked"`
	TotalApplications      int             `json:"totalApplications"`
	TotalInterviews        int             `json:"totalInterviews"`
	TotalOffers            int             `json:"totalOffers"`
	ApplicationSuccessRate float64         `json:"applicationSuccessRate"`
	RecentMilestones       []*ActivityResp `json:"recentMilestones"`
	MemberBreakdown        MemberBreakdown `json:"memberBreakdown"`
}

// SkillsGapProgress summarizes a mentee's skills-gap closure.
type SkillsGapProgress struct {
	TotalGaps          int     `json:"totalGaps"`
	GapsAddressed      int     `json:"gapsAddressed"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// MenteeProgress is the per-mentee progress view.
type MenteeProgress struct {
	UserId              string            `json:"userId"`
	TeamId              string            `json:"teamId"`
	TotalApplications   int               `json:"totalApplications"`
	InterviewsScheduled int               `json:"interviewsScheduled"`
	OffersReceived      int               `json:"offersReceived"`
	ActiveJobs          int               `json:"activeJobs"`
	CompletedTasks      int               `json:"completedTasks"`
	PendingTasks        int               `json:"pendingTasks"`
	SkillsGapProgress   SkillsGapProgress `json:"skillsGapProgress"`
	RecentActivities    []*ActivityResp   `json:"recentActivities"`
}

// MemberComparison is one member's anonymized row in the cross-member view.
// MemberId is a pseudonym derived from (userId, teamId); see
// AnonymizeMemberId in the analytics service.
type MemberComparison struct {
	MemberId              string  `json:"memberId"`
	ApplicationsSubmitted int     `json:"applicationsSubmitted"`
	InterviewsScheduled   int     `json:"interviewsScheduled"`
	OffersReceived        int     `json:"offersReceived"`
	TasksCompleted        int     `json:"tasksCompleted"`
	AverageResponseTime   float64 `json:"averageResponseTime"`
	CollaborationScore    int     `json:"collaborationScore"`
}

// TeamComparisonSummary is the team-level mean over member rows.
type TeamComparisonSummary struct {
	AverageApplicationsPerMember float64 `json:"averageApplicationsPerMember"`
	AverageInterviewsPerMember   float64 `json:"averageInterviewsPerMember"`
	AverageResponseTime          float64 `json:"averageResponseTime"`
	CollaborationScore           int     `json:"collaborationScore"`
}

// SuccessPatterns is static guidance text shipped with the comparison
// response. It is canned copy, not derived from the computed statistics.
type SuccessPatterns struct {
	BestPerformingStrategies []string `json:"bestPerformingStrategies"`
	CommonSuccessFactors     []string `json:"commonSuccessFactors"`
	RecommendedActions       []string `json:"recommendedActions"`
}

// TeamComparison is the anonymized cross-member analytics response.
type TeamComparison struct {
	TeamId          string                `json:"teamId"`
	Members         []*MemberComparison   `json:"members"`
	Summary         TeamComparisonSummary `json:"summary"`
	BestPerformers  []*MemberComparison   `json:"bestPerformers"`
	SuccessPatterns SuccessPatterns       `json:"successPatterns"`
}

// CannedSuccessPatterns is the static guidance table returned to every team.
var CannedSuccessPatterns = SuccessPatterns{
	BestPerformingStrategies: []string{
		"Tailor the resume to every application",
		"Follow up within a week of applying",
		"Practice interviews with a mentor before each round",
	},
	CommonSuccessFactors: []string{
		"Consistent weekly application volume",
		"Completing assigned preparation tasks",
		"Acting on mentor feedback quickly",
	},
	RecommendedActions: []string{
		"Schedule a mock interview for upcoming rounds",
		"Review the skills gap analysis and close one gap this week",
		"Share promising job leads with the team",
	},
}
