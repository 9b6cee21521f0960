package handlers

import (
	"net/http"
	"strconv"

	"arheb/internal/http/middleware"
	"arheb/internal/repositories"
	"arheb/internal/services"

	"github.com/gin-gonic/gin"
)

func checkoutService(c *gin.Context) services.CheckoutService {
	return services.CheckoutService{
		Orders:         repositories.OrderRepository{},
		Promos:         repositories.PromoRepository{},
		Stores:         repositories.StoreRepository{},
		ResolveStoreID: getFixtures().StoreIDForProduct,
		RequestID:      middleware.GetRequestID(c),
	}
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "Invalid order id", err)
		return 0, false
	}
	return id, true
}

// POST /api/checkout
func CreateOrder(c *gin.Context) {
	var in services.CheckoutInput
	if !BindJSONOrError(c, &in) {
		return
	}

	order, err := checkoutService(c).CreateOrder(middleware.GetIdentity(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, "Order created successfully", order)
}

// GET /api/checkout
func ListOrders(c *gin.Context) {
	repo := repositories.OrderRepository{}
	orders, err := repo.ListByIdentity(middleware.GetIdentity(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	for _, o := range orders {
		o.Items, _ = repo.ListItems(o.ID)
	}
	Respond(c, http.StatusOK, "Orders retrieved", orders)
}

// GET /api/checkout/:orderId
func GetOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	repo := repositories.OrderRepository{}
	order, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !order.OwnedBy(middleware.GetIdentity(c)) {
		RespondError(c, http.StatusForbidden, "Access to this order is forbidden", nil)
		return
	}
	order.Items, _ = repo.ListItems(id)
	Respond(c, http.StatusOK, "Order retrieved", order)
}

type rateRequest struct {
	Rating *int `json:"rating"`
}

// PUT /api/checkout/:orderId/rate
func RateOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req rateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Rating == nil {
		RespondError(c, http.StatusBadRequest, "rating is required", nil)
		return
	}

	order, err := checkoutService(c).RateOrder(middleware.GetIdentity(c), id, *req.Rating)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "Order rated successfully", order)
}

// GET /api/promo-codes/:code
func GetPromoCode(c *gin.Context) {
	promo, err := repositories.PromoRepository{}.FindByName(c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "Promo code valid", promo)
}
