package main

import (
	"github.com/gin-gonic/gin"
	"wanderly.backend/internal/interfaces/http/handlers"
	"wanderly.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	guideHandler   *handlers.GuideHandler
	bookingHandler *handlers.BookingHandler
	walletHandler  *handlers.WalletHandler
	kycHandler     *handlers.KYCHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Guide profile routes (protected)
		guides := v1.Group("/guides")
		guides.Use(d.authMiddleware)
		{
			guides.POST("/profile", d.guideHandler.CreateProfile)
			guides.GET("/profile", d.guideHandler.GetProfile)
		}

		// Booking routes (protected)
		bookings := v1.Group("/bookings")
		bookings.Use(d.authMiddleware)
		{
			bookings.POST("", d.bookingHandler.CreateBooking)
			bookings.GET("", d.bookingHandler.ListBookings)
			bookings.GET("/:id", d.bookingHandler.GetBooking)
			bookings.POST("/:id/finalize", middleware.IdempotencyMiddleware(), d.bookingHandler.FinalizeBooking)
		}

		// Wallet routes (protected)
		wallet := v1.Group("/wallet")
		wallet.Use(d.authMiddleware)
		{
			wallet.GET("", d.walletHandler.GetWallet)
			wallet.GET("/transactions", d.walletHandler.ListTransactions)
			wallet.POST("/topup", d.walletHandler.TopUp)
		}

		// KYC routes (protected)
		kyc := v1.Group("/kyc")
		kyc.Use(d.authMiddleware)
		{
			kyc.POST("", d.kycHandler.SubmitKYC)
			kyc.GET("/status", d.kycHandler.GetStatus)
		}
	}
}
