package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/api/handlers"
	"github.com/linweiyu/bugtrack-go/internal/api/middleware"
	"github.com/linweiyu/bugtrack-go/internal/application"
)

func RegisterRoutes(r *gin.Engine, svc *application.Services) {
	h := handlers.New(svc, r)

	// setup
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/profile", h.User.Profile)
		auth.PUT("/profile", h.User.UpdateProfile)
		auth.GET("/ws/activity", h.History.StreamActivity)

		users := auth.Group("/users")
		{
			users.GET("", middleware.Admin(), h.User.ListUsers)
		}

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.ListProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
			projects.POST("", h.Project.CreateProject)
			projects.PUT("/:id", h.Project.UpdateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
			projects.GET("/:id/versions", h.Project.ListVersions)
			projects.POST("/:id/versions", h.Project.CreateVersion)
			projects.GET("/:id/stats", h.Stats.ProjectSummary)
		}

		bugs := auth.Group("/bugs")
		{
			bugs.GET("", h.Bug.ListBugs)
			bugs.GET("/my", h.Bug.MyBugs)
			bugs.GET("/:id", h.Bug.GetBugByID)
			bugs.POST("", h.Bug.CreateBug)
			bugs.PUT("/:id", h.Bug.UpdateBug)
			bugs.PUT("/:id/status", h.Bug.ChangeStatus)
			bugs.DELETE("/:id", h.Bug.DeleteBug)

			bugs.GET("/:id/comments", h.Comment.ListComments)
			bugs.POST("/:id/comments", h.Comment.AddComment)
			bugs.DELETE("/:id/comments/:comment_id", h.Comment.DeleteComment)

			bugs.GET("/:id/attachments", h.Attachment.ListAttachments)
			bugs.POST("/:id/attachments", h.Attachment.UploadAttachment)
			bugs.GET("/:id/attachments/:attachment_id", h.Attachment.DownloadAttachment)
			bugs.DELETE("/:id/attachments/:attachment_id", h.Attachment.DeleteAttachment)

			bugs.GET("/:id/history", h.History.ListHistory)
		}

		auth.GET("/activity", h.History.RecentActivity)
		auth.GET("/stats", h.Stats.SystemSummary)

		analyze := auth.Group("/analyze")
		{
			analyze.POST("", h.Analysis.Submit)
			analyze.GET("/history", h.Analysis.History)
			analyze.GET("/:id", h.Analysis.GetResults)
		}
	}
}
