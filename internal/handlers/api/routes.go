package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/lootwheel/internal/models"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	"github.com/gin-gonic/gin"
)

type turnRequest struct {
	Participant string `json:"participant"`
}

type swapRequest struct {
	Participant string `json:"participant"`
	Counterpart string `json:"counterpart" binding:"required"`
}

type reorderRequest struct {
	Index     *int             `json:"index" binding:"required"`
	Direction engine.Direction `json:"direction" binding:"required,oneof=up down"`
}

type orderRequest struct {
	Participants []string `json:"participants" binding:"required"`
}

type itemRequest struct {
	Name     string        `json:"name" binding:"required"`
	Rarity   models.Rarity `json:"rarity"`
	Category string        `json:"category"`
	Order    []string      `json:"order"`
}

type pendingRequest struct {
	Name     string          `json:"name" binding:"required"`
	Rarity   models.Rarity   `json:"rarity"`
	Category string          `json:"category"`
	Priority models.Priority `json:"priority"`
}

type promoteRequest struct {
	Order []string `json:"order"`
}

type memberRequest struct {
	Name          string `json:"name" binding:"required"`
	Role          string `json:"role"`
	JoinRotations bool   `json:"joinRotations"`
}

type renameRequest struct {
	Name string `json:"name" binding:"required"`
}

// registerRoutes sets up the API routes on the router
func (s *Server) registerRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := s.router.Group("/api/v1/guilds/:guildID", s.authenticate())

	g.GET("/state", s.handleState)
	g.GET("/history", s.handleHistory)
	g.GET("/export", s.handleExport)
	g.PUT("/import", s.handleImport)

	g.POST("/reset", s.handleReset)
	g.POST("/advance", s.handleAdvanceAll)

	g.POST("/items", s.handleAddItem)
	g.DELETE("/items/:itemID", s.handleDeleteItem)
	g.POST("/items/:itemID/advance", s.handleAdvance)
	g.POST("/items/:itemID/loot", s.handleLoot)
	g.POST("/items/:itemID/skip", s.handleSkip)
	g.POST("/items/:itemID/swap", s.handleSwap)
	g.POST("/items/:itemID/reset", s.handleReset)
	g.POST("/items/:itemID/reorder", s.handleReorder)
	g.POST("/items/:itemID/randomize", s.handleRandomize)
	g.POST("/items/:itemID/order", s.handleSetOrder)

	g.POST("/pending", s.handleQueueItem)
	g.POST("/pending/:pendingID/promote", s.handlePromote)
	g.DELETE("/pending/:pendingID", s.handleDiscardPending)

	g.POST("/members", s.handleAddMember)
	g.PATCH("/members/:participantID", s.handleRenameMember)
	g.DELETE("/members/:participantID", s.handleRemoveMember)
}

// bindOptional decodes a JSON body that may be absent
func bindOptional(c *gin.Context, target any) error {
	if err := c.ShouldBindJSON(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) handleState(c *gin.Context) {
	out, err := s.rotation.GetState(c.Request.Context(), &rotationService.GetStateInput{GuildID: c.Param("guildID")})
	if err != nil {
		s.fail(c, "state", err)
		return
	}
	c.JSON(http.StatusOK, out.View)
}

func (s *Server) handleHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, errors.New("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	out, err := s.rotation.GetHistory(c.Request.Context(), &rotationService.GetHistoryInput{
		GuildID: c.Param("guildID"),
		ItemRef: c.Query("item"),
		Limit:   limit,
	})
	if err != nil {
		s.fail(c, "history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": out.Entries})
}

func (s *Server) handleExport(c *gin.Context) {
	out, err := s.rotation.Export(c.Request.Context(), &rotationService.ExportInput{GuildID: c.Param("guildID")})
	if err != nil {
		s.fail(c, "export", err)
		return
	}
	c.Data(http.StatusOK, "application/json", out.Data)
}

func (s *Server) handleImport(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}

	out, err := s.rotation.Import(c.Request.Context(), &rotationService.ImportInput{
		GuildID: c.Param("guildID"),
		Admin:   admin(c),
		Data:    data,
	})
	if err != nil {
		s.fail(c, "import", err)
		return
	}
	c.JSON(http.StatusOK, out.View)
}

// handleReset serves both the guild-wide and the item-scoped reset
func (s *Server) handleReset(c *gin.Context) {
	out, err := s.rotation.Reset(c.Request.Context(), &rotationService.ResetInput{
		GuildID: c.Param("guildID"),
		Admin:   admin(c),
		ItemRef: c.Param("itemID"),
	})
	if err != nil {
		s.fail(c, "reset", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":        out.Result.Items,
		"restored":     out.Result.Restored,
		"announcement": out.Announcement,
		"view":         out.View,
	})
}

func (s *Server) handleAdvanceAll(c *gin.Context) {
	out, err := s.rotation.AdvanceAll(c.Request.Context(), &rotationService.GuildInput{
		GuildID: c.Param("guildID"),
		Admin:   admin(c),
	})
	if err != nil {
		s.fail(c, "advance_all", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advanced": out.Advanced, "view": out.View})
}

func (s *Server) handleAdvance(c *gin.Context) {
	out, err := s.rotation.Advance(c.Request.Context(), &rotationService.ItemInput{
		GuildID: c.Param("guildID"),
		Admin:   admin(c),
		ItemRef: c.Param("itemID"),
	})
	if err != nil {
		s.fail(c, "advance", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advanced": out.Advanced, "holder": out.HolderName, "view": out.View})
}

func (s *Server) handleLoot(c *gin.Context) {
	var req turnRequest
	if err := bindOptional(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.Loot(c.Request.Context(), &rotationService.TurnInput{
		GuildID:        c.Param("guildID"),
		Admin:          admin(c),
		ItemRef:        c.Param("itemID"),
		ParticipantRef: req.Participant,
	})
	s.respondTurn(c, "loot", out, err)
}

func (s *Server) handleSkip(c *gin.Context) {
	var req turnRequest
	if err := bindOptional(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.Skip(c.Request.Context(), &rotationService.TurnInput{
		GuildID:        c.Param("guildID"),
		Admin:          admin(c),
		ItemRef:        c.Param("itemID"),
		ParticipantRef: req.Participant,
	})
	s.respondTurn(c, "skip", out, err)
}

func (s *Server) handleSwap(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.Swap(c.Request.Context(), &rotationService.SwapInput{
		GuildID:        c.Param("guildID"),
		Admin:          admin(c),
		ItemRef:        c.Param("itemID"),
		ParticipantRef: req.Participant,
		CounterpartRef: req.Counterpart,
	})
	s.respondTurn(c, "swap", out, err)
}

func (s *Server) respondTurn(c *gin.Context, op string, out *rotationService.TurnOutput, err error) {
	if err != nil {
		s.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entry":        out.Result.Entry,
		"fromDeferral": out.Result.FromDeferral,
		"announcement": out.Announcement,
		"view":         out.View,
	})
}

func (s *Server) handleReorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.Reorder(c.Request.Context(), &rotationService.ReorderInput{
		GuildID:   c.Param("guildID"),
		Admin:     admin(c),
		ItemRef:   c.Param("itemID"),
		Index:     *req.Index,
		Direction: req.Direction,
	})
	s.respondOrder(c, "reorder", out, err)
}

func (s *Server) handleRandomize(c *gin.Context) {
	out, err := s.rotation.Randomize(c.Request.Context(), &rotationService.ItemInput{
		GuildID: c.Param("guildID"),
		Admin:   admin(c),
		ItemRef: c.Param("itemID"),
	})
	s.respondOrder(c, "randomize", out, err)
}

func (s *Server) handleSetOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.SetOrder(c.Request.Context(), &rotationService.SetOrderInput{
		GuildID:         c.Param("guildID"),
		Admin:           admin(c),
		ItemRef:         c.Param("itemID"),
		ParticipantRefs: req.Participants,
	})
	s.respondOrder(c, "set_order", out, err)
}

func (s *Server) respondOrder(c *gin.Context, op string, out *rotationService.OrderOutput, err error) {
	if err != nil {
		s.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": out.Names, "view": out.View})
}

func (s *Server) handleAddItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.AddItem(c.Request.Context(), &rotationService.AddItemInput{
		GuildID:         c.Param("guildID"),
		Admin:           admin(c),
		Name:            req.Name,
		Rarity:          req.Rarity,
		Category:        req.Category,
		ParticipantRefs: req.Order,
	})
	if err != nil {
		s.fail(c, "add_item", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": out.Item, "view": out.View})
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	out, err := s.rotation.DeleteItem(c.Request.Context(), &rotationService.ItemInput{
		GuildID: c.Param("guildID"),
		Admin:   admin(c),
		ItemRef: c.Param("itemID"),
	})
	if err != nil {
		s.fail(c, "delete_item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": out.Item, "deferralsPurged": out.DeferralsPurged, "view": out.View})
}

func (s *Server) handleQueueItem(c *gin.Context) {
	var req pendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.QueueItem(c.Request.Context(), &rotationService.QueueItemInput{
		GuildID:  c.Param("guildID"),
		Admin:    admin(c),
		Name:     req.Name,
		Rarity:   req.Rarity,
		Category: req.Category,
		Priority: req.Priority,
	})
	if err != nil {
		s.fail(c, "queue_item", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pending": out.Pending, "position": out.Position, "view": out.View})
}

func (s *Server) handlePromote(c *gin.Context) {
	var req promoteRequest
	if err := bindOptional(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.Promote(c.Request.Context(), &rotationService.PromoteInput{
		GuildID:         c.Param("guildID"),
		Admin:           admin(c),
		PendingRef:      c.Param("pendingID"),
		ParticipantRefs: req.Order,
	})
	if err != nil {
		s.fail(c, "promote", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": out.Item, "view": out.View})
}

func (s *Server) handleDiscardPending(c *gin.Context) {
	out, err := s.rotation.DiscardPending(c.Request.Context(), &rotationService.PendingInput{
		GuildID:    c.Param("guildID"),
		Admin:      admin(c),
		PendingRef: c.Param("pendingID"),
	})
	if err != nil {
		s.fail(c, "discard_pending", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": out.Pending, "view": out.View})
}

func (s *Server) handleAddMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.AddParticipant(c.Request.Context(), &rotationService.AddParticipantInput{
		GuildID:       c.Param("guildID"),
		Admin:         admin(c),
		Name:          req.Name,
		Role:          req.Role,
		JoinRotations: req.JoinRotations,
	})
	if err != nil {
		s.fail(c, "add_member", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"participant": out.Participant, "view": out.View})
}

func (s *Server) handleRenameMember(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.rotation.RenameParticipant(c.Request.Context(), &rotationService.RenameParticipantInput{
		GuildID:        c.Param("guildID"),
		Admin:          admin(c),
		ParticipantRef: c.Param("participantID"),
		Name:           req.Name,
	})
	if err != nil {
		s.fail(c, "rename_member", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"participant": out.Participant, "view": out.View})
}

func (s *Server) handleRemoveMember(c *gin.Context) {
	out, err := s.rotation.RemoveParticipant(c.Request.Context(), &rotationService.ParticipantInput{
		GuildID:        c.Param("guildID"),
		Admin:          admin(c),
		ParticipantRef: c.Param("participantID"),
	})
	if err != nil {
		s.fail(c, "remove_member", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"participant": out.Participant, "view": out.View})
}
