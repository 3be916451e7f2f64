package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/application"
)

type Handlers struct {
	User       *UserHandler
	Project    *ProjectHandler
	Bug        *BugHandler
	Comment    *CommentHandler
	Attachment *AttachmentHandler
	History    *HistoryHandler
	Stats      *StatsHandler
	Analysis   *AnalysisHandler
	Router     *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Project:    NewProjectHandler(svc.Project),
		Bug:        NewBugHandler(svc.Bug),
		Comment:    NewCommentHandler(svc.Comment),
		Attachment: NewAttachmentHandler(svc.Attachment),
		History:    NewHistoryHandler(svc.History),
		Stats:      NewStatsHandler(svc.Stats),
		Analysis:   NewAnalysisHandler(svc.Analysis),
		Router:     router,
	}
}
