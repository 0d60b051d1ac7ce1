package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"mediacore"
	"mediacore/internal/application/usecase"
	"mediacore/internal/infrastructure/broker"
	"mediacore/internal/infrastructure/database"
	"mediacore/internal/infrastructure/imaging"
	"mediacore/internal/infrastructure/minio"
	"mediacore/internal/presentation/handler"
	"mediacore/pkg/logger"
)

// multipartOverhead covers the multipart boundaries and metadata form
// fields sent alongside a file that is itself at the upload ceiling.
const multipartOverhead = 64 * 1024

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	services, err := connectCore(args[2])
	if err != nil {
		ExitOnError(err)
	}
	defer services.close()
	cfg := services.cfg

	logger.Info("running mediacore", "version", mediacore.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	publisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	writer := database.NewMediaWriter(services.db)
	retriever := database.NewMediaRetriever(services.db)
	updater := database.NewMediaUpdater(services.db)
	remover := database.NewMediaRemover(services.db)
	mediaLister := database.NewMediaLister(services.db)
	entryLister := database.NewEntryLister(services.db)

	blobUploader := minio.NewUploader(services.store, &cfg.MinIOUploader)
	blobRemover := minio.NewRemover(services.store, &cfg.MinIORemover)
	blobLister := minio.NewLister(services.store, &cfg.MinIOLister)

	generator := imaging.NewGenerator(&cfg.Imaging, frameExtractor(&cfg.Imaging))

	uploader := usecase.NewUploader(generator, blobUploader, blobRemover, writer, publisher, cfg.Upload.MaxBytes)
	replacer := usecase.NewReplacer(generator, blobUploader, blobRemover, retriever, updater, publisher, cfg.Upload.MaxBytes)
	deleter := usecase.NewDeleter(retriever, remover, blobRemover, publisher)
	getter := usecase.NewGetter(retriever)
	lister := usecase.NewLister(mediaLister)
	editor := usecase.NewEditor(updater)
	scanner := usecase.NewScanner(entryLister, cfg.References)
	reconciler := usecase.NewReconciler(scanner, mediaLister, writer, blobLister, publisher)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodPatch, http.MethodDelete, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	if cfg.Upload.MaxBytes > 0 {
		// Transport-level ceiling derived from the configured upload limit,
		// with headroom for multipart framing around the file part.
		e.Use(echoMiddleware.BodyLimit(strconv.FormatInt(cfg.Upload.MaxBytes+multipartOverhead, 10)))
	}
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/media", handler.NewUploadHandler(uploader).Handle)
	e.POST("/media/:id/replace", handler.NewReplaceHandler(replacer).Handle)
	e.PATCH("/media/:id", handler.NewMetadataHandler(editor).Handle)
	e.DELETE("/media/:id", handler.NewDeleteHandler(deleter).Handle)
	e.GET("/media/usage", handler.NewUsageHandler(scanner).Handle)
	e.GET("/media/reconcile", handler.NewReconcileHandler(reconciler).Handle)
	e.POST("/media/repair", handler.NewRepairHandler(reconciler).Handle)
	e.GET("/media/:id", handler.NewGetHandler(getter).Handle)
	e.GET("/media", handler.NewListHandler(lister, getter).Handle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := brokerClient.Close(); err != nil {
		logger.Error("couldn't close broker client", "err", err)
	}
}

// frameExtractor returns nil when ffmpeg is unavailable; video uploads then
// store verbatim without a poster.
func frameExtractor(cfg *imaging.Config) imaging.FrameExtractor {
	if extractor := imaging.NewFFmpegExtractor(cfg); extractor != nil {
		return extractor
	}

	return nil
}
