package routes

import (
	"github.com/gofiber/fiber/v2"

	"clubhub-backend/internal/controllers"
	"clubhub-backend/internal/middleware"
	"clubhub-backend/internal/realtime"
	"clubhub-backend/internal/repository"
)

// Deps bundles everything the route groups need.
type Deps struct {
	Auth          *controllers.AuthController
	Events        *controllers.EventController
	Registrations *controllers.RegistrationController
	Receipts      *controllers.ReceiptController
	AdminPayments *controllers.AdminPaymentController
	AdminUsers    *controllers.UserAdminController
	Committee     *controllers.CommitteeController
	Dashboard     *controllers.DashboardController
	Users         *repository.UserRepository
	Hub           *realtime.Hub
}

func Register(app *fiber.App, d Deps) {
	SetupAuth(app, d)
	SetupEvents(app, d)
	SetupReceipts(app, d)
	SetupAdmin(app, d)

	app.Get("/committee", d.Committee.ListCommittee)
	app.Get("/hods", d.Committee.ListHODs)
	app.Post("/chatbot", controllers.Chatbot)

	app.Use("/ws", realtime.Upgrade)
	app.Get("/ws", d.Hub.Handler())
}

func SetupAuth(app *fiber.App, d Deps) {
	auth := app.Group("/auth")
	auth.Post("/signup", d.Auth.Signup)
	auth.Post("/verify-otp", d.Auth.VerifyOTP)
	auth.Post("/login", d.Auth.Login)
}

func SetupEvents(app *fiber.App, d Deps) {
	app.Get("/events", d.Events.ListEvents)
	app.Get("/events/:id", d.Events.GetEvent)
	app.Post("/events", middleware.RequireAdmin(d.Users), d.Events.CreateEvent)
	app.Put("/events/:id", middleware.RequireAdmin(d.Users), d.Events.UpdateEvent)
	app.Patch("/events/:id/cancel", middleware.RequireAdmin(d.Users), d.Events.CancelEvent)

	app.Post("/events/:id/register", middleware.RequireAuth(), d.Registrations.RegisterForEvent)
	app.Post("/events/:id/unregister", middleware.RequireAuth(), d.Registrations.UnregisterFromEvent)
}

func SetupReceipts(app *fiber.App, d Deps) {
	app.Get("/receipts/event/:eventId/download", middleware.RequireAuth(), d.Receipts.DownloadReceipt)
	app.Get("/receipts/event/:eventId/share", middleware.RequireAuth(), d.Receipts.ShareReceipt)
	// Shared links are public by design.
	app.Get("/receipts/shared/:token", d.Receipts.ViewSharedReceipt)
}

func SetupAdmin(app *fiber.App, d Deps) {
	admin := app.Group("/admin", middleware.RequireAdmin(d.Users))
	admin.Get("/dashboard", d.Dashboard.Dashboard)
	admin.Get("/payments", d.AdminPayments.ListPaymentReceipts)
	admin.Patch("/payments/:id/approve", d.AdminPayments.ApprovePayment)
	admin.Patch("/payments/:id/reject", d.AdminPayments.RejectPayment)
	admin.Patch("/events/:eventId/registrations/:userId/verify", d.AdminPayments.VerifyRegistrationReceipt(true))
	admin.Patch("/events/:eventId/registrations/:userId/reject", d.AdminPayments.VerifyRegistrationReceipt(false))
	admin.Patch("/users/:id/role", d.AdminUsers.UpdateUserRole)
	admin.Delete("/users/:id", d.AdminUsers.DeleteUser)
	admin.Post("/committee", d.Committee.CreateMember)
	admin.Put("/committee/:id", d.Committee.UpdateMember)
	admin.Delete("/committee/:id", d.Committee.DeleteMember)
}
