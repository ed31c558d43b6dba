package main

import (
	"net/http"
	"os"

	"github.com/SandeepaDilakshana/UniBond/server"
	"github.com/SandeepaDilakshana/UniBond/server/middlewares"
	"github.com/SandeepaDilakshana/UniBond/server/resolver"
	"github.com/SandeepaDilakshana/UniBond/storage"
	"github.com/SandeepaDilakshana/UniBond/utils"
	"github.com/SandeepaDilakshana/UniBond/utils/dotenv"
	"github.com/SandeepaDilakshana/UniBond/utils/flag"
	. "github.com/SandeepaDilakshana/UniBond/utils/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

func cleanup() {
	utils.CloseProfiler()
	utils.CloseTracer()
	Log.Info("api server shutdown")
}

// newFileStore picks S3 when a media bucket is configured, otherwise an
// in-memory store so development runs need no AWS credentials.
func newFileStore() storage.FileStore {
	bucket := os.Getenv("MEDIA_BUCKET")
	if bucket == "" {
		Log.Warn("MEDIA_BUCKET not set, media uploads are kept in memory")
		return storage.NewFakeFileStore()
	}
	store, err := storage.NewS3FileStore(bucket, os.Getenv("MEDIA_BASE_URL"))
	if err != nil {
		Log.Fatal("fail to setup media store: ", err)
	}
	return store
}

func main() {
	defer cleanup()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	utils.InitTracer()
	utils.InitProfiler()

	if !flag.ByPassAuth {
		// Middlewares
		middlewares.Setup()
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to database: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(gintrace.Middleware(flag.ServiceName))
	if !flag.ByPassAuth {
		router.Use(middlewares.JWT())
	}

	api := server.NewAPIServer(resolver.New(db), newFileStore(), os.Getenv("AVATAR_BASE_URL"))
	api.RegisterRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	Log.Info("api server starts up")
	router.Run(":8080")
}
