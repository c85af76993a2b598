package main

import (
	"log"
	"net/http"
	"sync"

	"github.com/Unleash/unleash-client-go/v3"
	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"
)

func addRoutes(router *httprouter.Router) {
	router.GET("/v1/info", info)
	router.GET("/v1/cases/:caseId/status", getStatus)
	router.GET("/v1/cases/:caseId/subcases", getSubCases)
	router.GET("/v1/cases/:caseId/tasks", getTasks)
	router.GET("/v1/cases/:caseId/conditions", getConditions)
	router.GET("/v1/cases/:caseId/documentation-requirements", getDocumentationRequirements)
	router.GET("/v1/cases/:caseId/history", getHistory)
}

func startServer(router *httprouter.Router, wg *sync.WaitGroup) *http.Server {
	srv := &http.Server{
		Addr:    ":" + viper.GetString("port"),
		Handler: router,
	}
	go func() {
		defer wg.Done()
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Println("Error starting the server:", err.Error())
		}
	}()
	return srv
}

func main() {
	setDefaults()
	viper.AutomaticEnv()

	err := unleash.Initialize(
		unleash.WithUrl(viper.GetString("unleash_path")),
		unleash.WithAppName(viper.GetString("service_name")),
		unleash.WithListener(BasicListener{}),
	)
	if err != nil {
		log.Println("Error initialising Unleash:", err.Error())
	}

	router := httprouter.New()
	addRoutes(router)

	var wg sync.WaitGroup
	wg.Add(1)
	srv := startServer(router, &wg)
	log.Println("Serving on", srv.Addr)
	wg.Wait()
}
