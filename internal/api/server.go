package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/tubhub/tubhub-api/docs"
	v1 "github.com/tubhub/tubhub-api/internal/api/handler/v1"
	"github.com/tubhub/tubhub-api/internal/api/middleware"
	"github.com/tubhub/tubhub-api/internal/config"
	"github.com/tubhub/tubhub-api/internal/repository"
	"github.com/tubhub/tubhub-api/internal/repository/dao"
	"github.com/tubhub/tubhub-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db, userSvc)
	tubHandler := s.initTubHandler(db)
	reservationHandler := s.initReservationHandler(db, userSvc)
	ratingHandler := s.initRatingHandler(db, userSvc)
	discountHandler := s.initDiscountHandler(db)
	faqHandler := s.initFaqHandler(db, userSvc)
	s.MountHandlers(userSvc, authHandler, userHandler, tubHandler, reservationHandler, ratingHandler, discountHandler, faqHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB, userSvc *service.UserService) *v1.UserHandler {
	resSvc := s.newReservationService(db)
	handler := v1.NewUserHandler(userSvc, resSvc)

	return handler
}

func (s *Server) initTubHandler(db *gorm.DB) *v1.TubHandler {
	tubDAO := dao.NewTubDAO(db)
	repo := repository.NewTubRepository(tubDAO)
	svc := service.NewTubService(repo)
	handler := v1.NewTubHandler(svc)

	return handler
}

func (s *Server) initReservationHandler(db *gorm.DB, userSvc *service.UserService) *v1.ReservationHandler {
	svc := s.newReservationService(db)
	handler := v1.NewReservationHandler(svc, userSvc)

	return handler
}

func (s *Server) initRatingHandler(db *gorm.DB, userSvc *service.UserService) *v1.RatingHandler {
	ratingDAO := dao.NewRatingDAO(db)
	repo := repository.NewRatingRepository(ratingDAO)
	tubRepo := repository.NewTubRepository(dao.NewTubDAO(db))
	svc := service.NewRatingService(repo, tubRepo)
	handler := v1.NewRatingHandler(svc, userSvc)

	return handler
}

func (s *Server) initDiscountHandler(db *gorm.DB) *v1.DiscountHandler {
	discountDAO := dao.NewDiscountDAO(db)
	repo := repository.NewDiscountRepository(discountDAO)
	svc := service.NewDiscountService(repo)
	handler := v1.NewDiscountHandler(svc)

	return handler
}

func (s *Server) initFaqHandler(db *gorm.DB, userSvc *service.UserService) *v1.FaqHandler {
	faqDAO := dao.NewFaqDAO(db)
	repo := repository.NewFaqRepository(faqDAO)
	svc := service.NewFaqService(repo)
	handler := v1.NewFaqHandler(svc, userSvc)

	return handler
}

func (s *Server) newReservationService(db *gorm.DB) *service.ReservationService {
	reservationDAO := dao.NewReservationDAO(db)
	repo := repository.NewReservationRepository(reservationDAO)
	tubRepo := repository.NewTubRepository(dao.NewTubDAO(db))
	ledger := service.NewDiscountService(repository.NewDiscountRepository(dao.NewDiscountDAO(db)))

	return service.NewReservationService(repo, tubRepo, ledger)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	userSvc *service.UserService,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	tubHandler *v1.TubHandler,
	reservationHandler *v1.ReservationHandler,
	ratingHandler *v1.RatingHandler,
	discountHandler *v1.DiscountHandler,
	faqHandler *v1.FaqHandler,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	public := s.Router.Group(basePath)
	{
		public.GET("/tubs", tubHandler.HandleListTubs)
		public.GET("/tubs/:tubID", tubHandler.HandleGetTub)
		public.GET("/tubs/:tubID/reservations", reservationHandler.HandleCheckReservations)
		public.GET("/tubs/:tubID/ratings", ratingHandler.HandleListRatings)
		public.GET("/faq", faqHandler.HandleListPublishedFaqs)
	}

	// Booking and question submission accept anonymous callers but
	// record the identity when a token is present.
	optional := s.Router.Group(basePath, authenticator.VerifyJWTOptional())
	{
		optional.POST("/tubs/:tubID/reservations", reservationHandler.HandleCreateReservation)
		optional.POST("/faq/question", faqHandler.HandleSubmitQuestion)
	}

	users := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.GET("/profile", userHandler.HandleGetProfile)
		users.GET("/profile/reservations", userHandler.HandleGetProfileReservations)
		users.POST("/tubs/:tubID/ratings", ratingHandler.HandleCreateRating)
		users.GET("/reservations", reservationHandler.HandleListReservations)
		users.GET("/reservations/accepted", reservationHandler.HandleListAcceptedReservations)
		users.GET("/reservations/pending", reservationHandler.HandleListPendingReservations)
		users.GET("/discounts", discountHandler.HandleListDiscounts)
		users.GET("/discounts/:discountID", discountHandler.HandleGetDiscount)
	}

	managers := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequireManager(userSvc))
	{
		managers.POST("/tubs", tubHandler.HandleCreateTub)
		managers.PUT("/tubs/:tubID", tubHandler.HandleUpdateTub)
		managers.DELETE("/tubs/:tubID", tubHandler.HandleDeleteTub)
		managers.PATCH("/reservations/:reservationID/accept", reservationHandler.HandleAcceptReservation)
		managers.DELETE("/reservations/:reservationID", reservationHandler.HandleDeleteReservation)
		managers.POST("/discounts", discountHandler.HandleCreateDiscount)
		managers.PUT("/discounts/:discountID", discountHandler.HandleUpdateDiscount)
		managers.DELETE("/discounts/:discountID", discountHandler.HandleDeleteDiscount)
		managers.GET("/faq/manage", faqHandler.HandleListAllFaqs)
		managers.PATCH("/faq/manage/:faqID/status", faqHandler.HandleToggleFaqStatus)
		managers.PUT("/faq/manage/:faqID", faqHandler.HandleUpdateFaq)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "TubHub API"
	docs.SwaggerInfo.Description = "Hot tub rental booking API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
