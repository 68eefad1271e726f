// Package worker implements the template worker lifecycle and Redis Streams integration.
//
// The worker consumes render requests from a Redis Stream consumer group,
// loads the graph state of the execution, renders the node template and
// publishes the output back to the orchestrator.
//
// Example usage:
//
//	cfg, _ := config.Load()
//	redisClient := redis.NewClient(&redis.Options{...})
//	renderer := render.NewRenderer(cfg.CELEnabled, logger)
//
//	worker := worker.NewWorker(cfg, redisClient, renderer, stateStore, logger)
//	if err := worker.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer worker.Stop()
//
// Each message carries a JSON "data" field:
//
//	{"execution_id": "exec-1", "node_id": "summary", "config": {"template": "..."}}
//
// Results go to RESULT_STREAM, failures to RESULT_STREAM + ".errors". Every
// message is acknowledged.
//
// Health checks are provided via a separate HTTP server:
//
//	healthServer := worker.NewHealthServer(8083, redisClient, renderer.Engine(), logger)
//	healthServer.Start()
//	defer healthServer.Stop()
package worker
