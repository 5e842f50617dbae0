package usecase

import "job_hunter/internal/feature/actions/domain/entity"

// DefaultTemplates returns the built-in action template catalog. Only
// "Applied" is default-flagged, so every new job starts with that one event.
func DefaultTemplates() []*entity.ActionTemplate {
	return []*entity.ActionTemplate{
		{Name: "Applied", Description: "Submitted job application", Category: entity.CategoryApplication, IsDefault: true, Color: "#3B82F6", Icon: "📝", Order: 1},
		{Name: "Application Confirmed", Description: "Received confirmation that application was received", Category: entity.CategoryApplication, Color: "#10B981", Icon: "✅", Order: 2},

		{Name: "HR Interview Scheduled", Description: "Human Resources interview has been scheduled", Category: entity.CategoryInterview, Color: "#F59E0B", Icon: "👥", Order: 10},
		{Name: "HR Interview Completed", Description: "Human Resources interview has been completed", Category: entity.CategoryInterview, Color: "#8B5CF6", Icon: "✅", Order: 11},
		{Name: "Technical Interview Scheduled", Description: "Technical interview has been scheduled", Category: entity.CategoryInterview, Color: "#EF4444", Icon: "💻", Order: 12},
		{Name: "Technical Interview Completed", Description: "Technical interview has been completed", Category: entity.CategoryInterview, Color: "#8B5CF6", Icon: "✅", Order: 13},
		{Name: "Coding Challenge Assigned", Description: "Received coding challenge or take-home assignment", Category: entity.CategoryInterview, Color: "#06B6D4", Icon: "🧩", Order: 14},
		{Name: "Coding Challenge Completed", Description: "Completed coding challenge or take-home assignment", Category: entity.CategoryInterview, Color: "#8B5CF6", Icon: "✅", Order: 15},
		{Name: "Onsite Interview Scheduled", Description: "Onsite interview has been scheduled", Category: entity.CategoryInterview, Color: "#F97316", Icon: "🏢", Order: 16},
		{Name: "Onsite Interview Completed", Description: "Onsite interview has been completed", Category: entity.CategoryInterview, Color: "#8B5CF6", Icon: "✅", Order: 17},

		{Name: "Offer Received", Description: "Received job offer", Category: entity.CategoryResponse, Color: "#10B981", Icon: "🎉", Order: 20},
		{Name: "Offer Accepted", Description: "Accepted job offer", Category: entity.CategoryResponse, Color: "#059669", Icon: "🎊", Order: 21},
		{Name: "Offer Declined", Description: "Declined job offer", Category: entity.CategoryResponse, Color: "#DC2626", Icon: "❌", Order: 22},
		{Name: "Rejected", Description: "Application was rejected", Category: entity.CategoryResponse, Color: "#DC2626", Icon: "😞", Order: 23},
		{Name: "Position Filled", Description: "Position was filled by another candidate", Category: entity.CategoryResponse, Color: "#6B7280", Icon: "🔒", Order: 24},

		{Name: "Follow-up Email Sent", Description: "Sent follow-up email after application", Category: entity.CategoryFollowUp, Color: "#8B5CF6", Icon: "📧", Order: 30},
		{Name: "Thank You Email Sent", Description: "Sent thank you email after interview", Category: entity.CategoryFollowUp, Color: "#8B5CF6", Icon: "🙏", Order: 31},
		{Name: "Reference Check", Description: "Company contacted references", Category: entity.CategoryFollowUp, Color: "#F59E0B", Icon: "📞", Order: 32},

		{Name: "Application Withdrawn", Description: "Withdrew application from consideration", Category: entity.CategoryOther, Color: "#6B7280", Icon: "↩️", Order: 40},
		{Name: "Company Contacted Me", Description: "Company reached out proactively", Category: entity.CategoryOther, Color: "#3B82F6", Icon: "📞", Order: 41},
	}
}
