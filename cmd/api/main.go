package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"marketplus/internal/adapter/api"
	"marketplus/internal/adapter/api/handler"
	apimiddleware "marketplus/internal/adapter/api/middleware"
	"marketplus/internal/adapter/api/router"
	"marketplus/internal/adapter/repository"
	"marketplus/internal/infrastructure/firebase"
	"marketplus/internal/infrastructure/storage"
	"marketplus/internal/usecase"
	"marketplus/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	roleRepo := repository.NewFirestoreRoleRepository(firestoreClient)
	storeRepo := repository.NewFirestoreStoreRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	commissionRepo := repository.NewFirestoreCommissionRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	roleUseCase := usecase.NewRoleUseCase(userRepo, roleRepo, cfg.AdminEmail)
	verificationUseCase := usecase.NewVerificationUseCase(userRepo)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, roleUseCase, storageClient)
	productUseCase := usecase.NewProductUseCase(productRepo, storeRepo, categoryRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	commissionUseCase := usecase.NewCommissionUseCase(commissionRepo, storeRepo, userRepo, roleUseCase)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo, storeRepo, orderRepo, commissionUseCase)

	handler.Setup(
		authUseCase,
		roleUseCase,
		verificationUseCase,
		storeUseCase,
		productUseCase,
		orderUseCase,
		cartUseCase,
		commissionUseCase,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apimiddleware.GeneralRateLimit())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(roleUseCase)
	verifiedMiddleware := apimiddleware.NewVerifiedMiddleware(verificationUseCase)

	router.Setup(e, authMiddleware, adminMiddleware, verifiedMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
