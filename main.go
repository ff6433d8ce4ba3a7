package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"booklib/config"
	"booklib/database"
	"booklib/logger"
	"booklib/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close database err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func showSetting(show bool) {
	if show {
		fmt.Println("current settings as follows:")
		fmt.Println("db path:", config.GetDBPath())
		fmt.Println("listen:", config.GetListen())
		fmt.Println("port:", config.GetPort())
		fmt.Println("log level:", config.GetLogLevel())
	}
}

func main() {
	// Optional .env next to the binary; real env vars win.
	_ = godotenv.Load()

	var showSettings bool

	rootCmd := &cobra.Command{
		Use:   "booklib",
		Short: "Personal library catalog web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "Show effective settings",
		Run: func(cmd *cobra.Command, args []string) {
			showSetting(showSettings)
		},
	}
	settingCmd.Flags().BoolVar(&showSettings, "show", true, "print the effective settings")
	rootCmd.AddCommand(settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
