package model

// DashboardStats số liệu tổng hợp cho giáo viên tư vấn
type DashboardStats struct {
	TotalEmoMap      int64            `json:"total_emomap"`
	TotalSurveys     int64            `json:"total_surveys"`
	TotalWallPosts   int64            `json:"total_wall_posts"`
	AverageRiskScore float64          `json:"average_risk_score"`
	RiskBuckets      map[string]int64 `json:"risk_buckets"`
	ColorCounts      map[string]int64 `json:"color_counts"`
}
