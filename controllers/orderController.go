package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart/novamart-api/initializers"
	"github.com/novamart/novamart-api/models"
	"github.com/novamart/novamart-api/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// CreateOrder persists a checkout snapshot. The userId in the body is
// taken as-is; there is no session binding on this route.
func CreateOrder(ctx *gin.Context) {
	var orderInfo models.Order
	if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	order := models.Order{
		UserID:          orderInfo.UserID,
		Items:           orderInfo.Items,
		TotalAmount:     orderInfo.TotalAmount,
		ShippingDetails: orderInfo.ShippingDetails,
		PaymentMethod:   orderInfo.PaymentMethod,
		UpiID:           orderInfo.UpiID,
		Status:          models.OrderStatusPending,
	}

	saved, err := initializers.Orders.CreateOrder(ctx.Request.Context(), &order)
	if err != nil {
		log.Println("Error creating order:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Error creating order", err)
		return
	}

	ctx.JSON(http.StatusCreated, saved)
}

// GetOrdersByUserId returns the full order history for a user, newest
// first. No pagination and no status filtering.
func GetOrdersByUserId(ctx *gin.Context) {
	userId := ctx.Param("userId")

	orders, err := initializers.Orders.OrdersByUser(ctx.Request.Context(), userId)
	if err != nil {
		log.Println("Error fetching orders:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Error fetching orders", err)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if !orderStatusData.Status.Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order status")
		return
	}

	orderId, err := primitive.ObjectIDFromHex(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	if err := initializers.Orders.UpdateStatus(ctx.Request.Context(), orderId, orderStatusData.Status); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}
		log.Println(err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update order status", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
	})
}
