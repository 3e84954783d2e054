package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/service/auth"
	"github.com/Domenick1991/skyward/internal/service/ledger"
	"github.com/Domenick1991/skyward/internal/service/workflow"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	auth     auth.AuthUseCase
	ledger   ledger.LedgerUseCase
	workflow *workflow.Service
}

type createBookingRequest struct {
	FlightID      string `json:"flightId" binding:"required"`
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Passengers    int    `json:"passengers"`
	TravelDate    string `json:"travelDate"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Card          *struct {
		CardNumber string `json:"cardNumber"`
		ExpiryDate string `json:"expiryDate"`
		CVV        string `json:"cvv"`
		NameOnCard string `json:"nameOnCard"`
	} `json:"card"`
}

type bookingResponse struct {
	ID               string `json:"id"`
	FlightID         string `json:"flightId"`
	ConfirmationCode string `json:"confirmationCode"`
	PaymentMethod    string `json:"paymentMethod"`
	PaymentStatus    string `json:"paymentStatus"`
	Passengers       int    `json:"passengers"`
	TravelDate       string `json:"travelDate"`
	CreatedAt        string `json:"createdAt"`
}

func NewBookingHandler(authSvc auth.AuthUseCase, ledgerSvc ledger.LedgerUseCase, workflowSvc *workflow.Service) *BookingHandler {
	return &BookingHandler{auth: authSvc, ledger: ledgerSvc, workflow: workflowSvc}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.listMine)
}

// create runs one whole workflow instance per request: details, payment for
// online bookings, confirmation.
func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	session, err := h.auth.Resume(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	instance, err := h.workflow.Start(ctx, session, req.FlightID)
	if err != nil {
		renderError(c, err)
		return
	}

	err = instance.SubmitDetails(ctx, workflow.DetailsForm{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Passengers:    req.Passengers,
		TravelDate:    req.TravelDate,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		renderError(c, err)
		return
	}

	if instance.Step() == workflow.StepPayment {
		card := workflow.CardForm{}
		if req.Card != nil {
			card = workflow.CardForm{
				CardNumber: req.Card.CardNumber,
				ExpiryDate: req.Card.ExpiryDate,
				CVV:        req.Card.CVV,
				NameOnCard: req.Card.NameOnCard,
			}
		}
		if err := instance.SubmitPayment(ctx, card); err != nil {
			renderError(c, err)
			return
		}
	}

	booking := instance.Booking()
	if booking == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking was not created"})
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) listMine(c *gin.Context) {
	ctx := c.Request.Context()
	session, err := h.auth.Resume(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	bookings, err := h.ledger.ListByUser(ctx, session.User.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:               b.ID,
		FlightID:         b.FlightID,
		ConfirmationCode: b.ConfirmationCode,
		PaymentMethod:    string(b.PaymentMethod),
		PaymentStatus:    string(b.PaymentStatus),
		Passengers:       b.Passengers,
		TravelDate:       b.TravelDate,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}
