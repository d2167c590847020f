package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"grouphome_coaching/pkg/api/calculator"
	configapi "grouphome_coaching/pkg/api/config"
	groupsapi "grouphome_coaching/pkg/api/groups"
	knowledgeapi "grouphome_coaching/pkg/api/knowledge"
	reportapi "grouphome_coaching/pkg/api/report"
	"grouphome_coaching/pkg/core/agent"
	"grouphome_coaching/pkg/core/coaching"
	"grouphome_coaching/pkg/core/knowledge"
	"grouphome_coaching/pkg/core/prompt"
	"grouphome_coaching/pkg/core/report"
	"grouphome_coaching/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize prompt library
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to hardcoded prompts")
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Initialize agent manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)

	// Database is optional; the calculator degrades to file persistence and
	// report persistence is skipped.
	ctx := context.Background()
	if err := store.InitDB(ctx); err != nil {
		fmt.Printf("[WARNING] Database unavailable, running in degraded mode: %v\n", err)
	}
	pool := store.GetPool()
	defer store.Close()

	// Calculator endpoints
	calcHandler := calculator.NewHandler(store.NewDefaultsStore(pool), store.NewDealStore(pool, ""))
	http.HandleFunc("/api/calculator/simple", calcHandler.HandleSimple)
	http.HandleFunc("/api/calculator/moderate", calcHandler.HandleModerate)
	http.HandleFunc("/api/calculator/advanced", calcHandler.HandleAdvanced)
	http.HandleFunc("/api/calculator/risk", calcHandler.HandleRisk)
	http.HandleFunc("/api/calculator/defaults", calcHandler.HandleDefaults)
	http.HandleFunc("/api/deals", calcHandler.HandleDeals)

	// Report endpoints
	reportHandler := reportapi.NewHandler(report.NewGenerator(agentMgr), store.NewReportStore(pool))
	http.HandleFunc("/api/report/underwriting", reportHandler.HandleUnderwriting)
	http.HandleFunc("/api/report/mio", reportHandler.HandleMIO)

	// Config endpoints
	configHandler := configapi.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Group management endpoints
	groupsHandler := groupsapi.NewHandler(coaching.NewGroupStore(pool))
	http.HandleFunc("/api/groups", groupsHandler.HandleGroups)
	http.HandleFunc("/api/groups/members", groupsHandler.HandleMembers)
	http.HandleFunc("/api/checkins", groupsHandler.HandleCheckIns)

	// Knowledge library endpoints
	knowledgeStore := knowledge.NewMemoryStore()
	embedder := knowledge.NewEmbedder()
	if embedder == nil {
		fmt.Println("[KNOWLEDGE] GEMINI_API_KEY not set, search falls back to keywords")
	}
	knowledgeHandler := knowledgeapi.NewHandler(knowledgeStore, knowledge.NewIngester(knowledgeStore, embedder), embedder)
	http.HandleFunc("/api/knowledge/ingest", knowledgeHandler.HandleIngest)
	http.HandleFunc("/api/knowledge/assets", knowledgeHandler.HandleAssets)
	http.HandleFunc("/api/knowledge/search", knowledgeHandler.HandleSearch)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - POST /api/calculator/simple")
	fmt.Println("  - POST /api/calculator/moderate")
	fmt.Println("  - POST /api/calculator/advanced")
	fmt.Println("  - POST /api/calculator/risk")
	fmt.Println("  - GET/POST /api/calculator/defaults")
	fmt.Println("  - GET/POST /api/deals")
	fmt.Println("  - POST /api/report/underwriting")
	fmt.Println("  - POST /api/report/mio")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - GET/POST /api/groups")
	fmt.Println("  - GET/POST/DELETE /api/groups/members")
	fmt.Println("  - GET/POST /api/checkins")
	fmt.Println("  - POST /api/knowledge/ingest")
	fmt.Println("  - GET  /api/knowledge/assets")
	fmt.Println("  - GET  /api/knowledge/search")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
