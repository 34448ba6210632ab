package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nurcom/crm/config"
	"github.com/nurcom/crm/database"
	"github.com/nurcom/crm/logger"
	"github.com/nurcom/crm/util/random"
	"github.com/nurcom/crm/web"
	"github.com/nurcom/crm/web/service"

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

func resetAdminPassword(randomize bool) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	password := config.GetAdminBootstrapPassword()
	if randomize {
		password = random.Seq(12)
	}

	accountService := service.AccountService{}
	if err := accountService.SetPassword(config.GetAdminEmail(), password); err != nil {
		fmt.Println("reset admin password failed:", err)
		return
	}
	fmt.Println("admin password reset success")
	fmt.Println("email:", config.GetAdminEmail())
	fmt.Println("password:", password)
}

func showAdmin() {
	fmt.Println("admin email:", config.GetAdminEmail())
	fmt.Println("listen port:", config.GetPort())
	fmt.Println("database:", config.GetDBPath())
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("unable to load .env:", err)
	}

	var rootCmd = &cobra.Command{
		Use: config.GetName(),
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Admin account maintenance",
	}

	var resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset the admin password",
		Run: func(cmd *cobra.Command, args []string) {
			randomize, _ := cmd.Flags().GetBool("random")
			resetAdminPassword(randomize)
		},
	}

	resetCmd.Flags().Bool("random", false, "generate a random password instead of the default")

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the admin email and server settings",
		Run: func(cmd *cobra.Command, args []string) {
			showAdmin()
		},
	}

	adminCmd.AddCommand(resetCmd, showCmd)

	rootCmd.AddCommand(runCmd, adminCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
