package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"canteen/internal/config"
	"canteen/internal/domain/model"
	"canteen/internal/infra/api"
	"canteen/internal/infra/session"
	"canteen/internal/poller"
	repo "canteen/internal/repository"
	"canteen/internal/tui"
	"canteen/internal/usecase"
)

// appはCLI全体の配線。設定→APIクライアント→usecaseの順に組む。
type app struct {
	cfg config.Config
	log *logrus.Logger

	client *api.Client

	auth          *usecase.AuthUsecase
	menu          *usecase.MenuUsecase
	cart          *usecase.CartUsecase
	orders        *usecase.OrderUsecase
	staff         *usecase.StaffOrderUsecase
	notifications *usecase.NotificationUsecase
	inventory     *usecase.InventoryUsecase
	categories    *usecase.CategoryUsecase
	canteens      *usecase.CanteenUsecase
	reports       *usecase.ReportUsecase
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	store := session.NewFileStore(cfg.TokenPath)

	cartRepo := api.NewCartAPIRepository(client)
	orderRepo := api.NewOrderAPIRepository(client)
	notifRepo := api.NewNotificationAPIRepository(client)

	return &app{
		cfg:           cfg,
		log:           log,
		client:        client,
		auth:          usecase.NewAuthUsecase(api.NewAuthAPIRepository(client), store, client, log),
		menu:          usecase.NewMenuUsecase(api.NewMenuAPIRepository(client), log),
		cart:          usecase.NewCartUsecase(cartRepo, orderRepo, log),
		orders:        usecase.NewOrderUsecase(orderRepo, log),
		staff:         usecase.NewStaffOrderUsecase(orderRepo, notifRepo, log),
		notifications: usecase.NewNotificationUsecase(notifRepo, log),
		inventory:     usecase.NewInventoryUsecase(api.NewInventoryAPIRepository(client), log),
		categories:    usecase.NewCategoryUsecase(api.NewCategoryAPIRepository(client), log),
		canteens:      usecase.NewCanteenUsecase(api.NewCanteenAPIRepository(client), log),
		reports:       usecase.NewReportUsecase(orderRepo, log),
	}, nil
}

// requireUser は保存済みセッションの復元。未ログインはここで止める。
func (a *app) requireUser(ctx context.Context) (model.User, error) {
	return a.auth.Restore(ctx)
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	cliApp := &cli.App{
		Name:     "canteen",
		Usage:    "campus canteen ordering client",
		Commands: a.commands(),
	}

	if err := cliApp.Run(os.Args); err != nil {
		if he, ok := usecase.AsHTTPError(err); ok {
			fmt.Fprintln(os.Stderr, "error:", he.Message)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		a.loginCommand(),
		a.logoutCommand(),
		a.signupCommand(),
		a.menuCommand(),
		a.cartCommand(),
		a.checkoutCommand(),
		a.historyCommand(),
		a.ordersCommand(),
		a.transitionCommand("accept", "accept an order (-> PREPARING)", a.staff.Accept),
		a.transitionCommand("decline", "decline an order (-> CANCELLED)", a.staff.Decline),
		a.transitionCommand("ready", "mark an order ready for pickup (-> READY)", a.staff.Ready),
		a.transitionCommand("complete", "complete an order (-> COMPLETED)", a.staff.Complete),
		a.notificationsCommand(),
		a.watchCommand(),
		a.dashboardCommand(),
		a.reportCommand(),
		a.inventoryCommand(),
		a.categoriesCommand(),
		a.canteensCommand(),
	}
}

func (a *app) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in with school id and password",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "school-id", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			user, err := a.auth.Login(c.Context, c.String("school-id"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", user.FullName, user.RoleName)
			return nil
		},
	}
}

func (a *app) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "drop the current session",
		Action: func(c *cli.Context) error {
			a.auth.Logout()
			fmt.Println("Logged out")
			return nil
		},
	}
}

func (a *app) signupCommand() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "phone"},
			&cli.StringFlag{Name: "school-id", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			user, err := a.auth.SignUp(c.Context, repo.SignUpInput{
				FullName: c.String("name"),
				Email:    c.String("email"),
				Phone:    c.String("phone"),
				SchoolID: c.String("school-id"),
				Password: c.String("password"),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Account created for %s, please log in\n", user.FullName)
			return nil
		},
	}
}

func (a *app) menuCommand() *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "browse the menu",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "category"},
			&cli.Int64Flag{Name: "canteen"},
			&cli.StringFlag{Name: "search"},
			&cli.BoolFlag{Name: "available"},
		},
		Action: func(c *cli.Context) error {
			items, err := a.menu.Browse(c.Context, usecase.MenuFilter{
				CategoryID:    c.Int64("category"),
				CanteenID:     c.Int64("canteen"),
				Query:         c.String("search"),
				AvailableOnly: c.Bool("available"),
			})
			if err != nil {
				return err
			}
			tui.RenderMenu(os.Stdout, items)
			return nil
		},
	}
}

func (a *app) cartCommand() *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "manage the basket",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "show the basket",
				Action: func(c *cli.Context) error {
					user, err := a.requireUser(c.Context)
					if err != nil {
						return err
					}
					summary, err := a.cart.Refresh(c.Context, user.UserID)
					if err != nil {
						return err
					}
					tui.RenderBasket(os.Stdout, summary)
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "add an item",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "item", Required: true},
					&cli.Int64Flag{Name: "qty", Value: 1},
					&cli.StringFlag{Name: "note"},
					&cli.BoolFlag{Name: "rice", Usage: "add rice (+15.00 per unit)"},
				},
				Action: func(c *cli.Context) error {
					user, err := a.requireUser(c.Context)
					if err != nil {
						return err
					}
					item, err := a.menu.Find(c.Context, c.Int64("item"))
					if err != nil {
						return err
					}
					summary, err := a.cart.AddLine(c.Context, user.UserID, item, c.Int64("qty"), c.String("note"), c.Bool("rice"))
					if err != nil {
						return err
					}
					tui.RenderBasket(os.Stdout, summary)
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "set a line quantity (0 removes the line)",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "item", Required: true},
					&cli.Int64Flag{Name: "qty", Required: true},
					&cli.StringFlag{Name: "note"},
					&cli.BoolFlag{Name: "rice"},
				},
				Action: func(c *cli.Context) error {
					user, err := a.requireUser(c.Context)
					if err != nil {
						return err
					}
					if _, err := a.cart.Refresh(c.Context, user.UserID); err != nil {
						return err
					}
					key := usecase.LineKey{
						ItemID:    c.Int64("item"),
						Note:      c.String("note"),
						AddonRice: c.Bool("rice"),
					}
					summary, err := a.cart.SetQuantity(c.Context, key, c.Int64("qty"))
					if err != nil {
						return err
					}
					tui.RenderBasket(os.Stdout, summary)
					return nil
				},
			},
			{
				Name:  "rm",
				Usage: "remove a line",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "item", Required: true},
					&cli.StringFlag{Name: "note"},
					&cli.BoolFlag{Name: "rice"},
				},
				Action: func(c *cli.Context) error {
					user, err := a.requireUser(c.Context)
					if err != nil {
						return err
					}
					if _, err := a.cart.Refresh(c.Context, user.UserID); err != nil {
						return err
					}
					key := usecase.LineKey{
						ItemID:    c.Int64("item"),
						Note:      c.String("note"),
						AddonRice: c.Bool("rice"),
					}
					summary, err := a.cart.RemoveLine(c.Context, key)
					if err != nil {
						return err
					}
					tui.RenderBasket(os.Stdout, summary)
					return nil
				},
			},
		},
	}
}

func (a *app) checkoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "place an order from the basket",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "payment", Usage: "payment method label"},
		},
		Action: func(c *cli.Context) error {
			user, err := a.requireUser(c.Context)
			if err != nil {
				return err
			}
			if _, err := a.cart.Refresh(c.Context, user.UserID); err != nil {
				return err
			}

			payment := c.String("payment")
			if payment == "" {
				payment = a.cfg.DefaultPaymentMethod
			}

			order, err := a.cart.Checkout(c.Context, user.UserID, payment)
			if err != nil {
				return err
			}
			fmt.Printf("Order %s placed, total %.2f\n", usecase.OrderNumber(order.OrderID), order.TotalPrice.Float())
			return nil
		},
	}
}

func (a *app) historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "show my orders grouped by tab",
		Action: func(c *cli.Context) error {
			user, err := a.requireUser(c.Context)
			if err != nil {
				return err
			}
			buckets, err := a.orders.History(c.Context, user.UserID)
			if err != nil {
				return err
			}
			tui.RenderHistory(os.Stdout, buckets)
			return nil
		},
	}
}

func (a *app) ordersCommand() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "staff: show the order queue",
		Action: func(c *cli.Context) error {
			if _, err := a.requireUser(c.Context); err != nil {
				return err
			}
			queue, err := a.staff.Queue(c.Context)
			if err != nil {
				return err
			}
			tui.RenderQueue(os.Stdout, queue)
			return nil
		},
	}
}

// transitionCommand は accept/decline/ready/complete の共通形。
func (a *app) transitionCommand(name, usage string, action func(ctx context.Context, orderID int64) (usecase.UpdateStatusResult, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<order-id>",
		Action: func(c *cli.Context) error {
			if _, err := a.requireUser(c.Context); err != nil {
				return err
			}
			var orderID int64
			if _, err := fmt.Sscanf(c.Args().First(), "%d", &orderID); err != nil {
				return fmt.Errorf("invalid order id %q", c.Args().First())
			}

			result, err := action(c.Context, orderID)
			if err != nil {
				return err
			}

			fmt.Printf("Order %s is now %s\n",
				usecase.OrderNumber(result.Order.OrderID), result.Order.CanonicalStatus())
			// 二次エラー。更新自体は成功しているので注意喚起だけ
			if result.NotifyErr != nil {
				fmt.Fprintln(os.Stderr, "warning: order updated but failed to notify customer")
			}
			return nil
		},
	}
}

func (a *app) notificationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "notifications",
		Usage: "show notifications grouped by day",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "mark-all-read"},
		},
		Action: func(c *cli.Context) error {
			user, err := a.requireUser(c.Context)
			if err != nil {
				return err
			}
			if c.Bool("mark-all-read") {
				if err := a.notifications.MarkAllRead(c.Context, user.UserID); err != nil {
					return err
				}
			}
			groups, err := a.notifications.ListGrouped(c.Context, user.UserID, time.Local)
			if err != nil {
				return err
			}
			tui.RenderNotifications(os.Stdout, groups)
			return nil
		},
	}
}

// watch は通知（とスタッフならキュー）を画面の寿命までポーリングする。
func (a *app) watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "poll notifications (and the queue for staff) until interrupted",
		Action: func(c *cli.Context) error {
			user, err := a.requireUser(c.Context)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			notifPoller := poller.New("notifications", a.cfg.NotifyPollInterval, a.log, func(ctx context.Context) error {
				groups, err := a.notifications.ListGrouped(ctx, user.UserID, time.Local)
				if err != nil {
					return err
				}
				fmt.Println("---")
				tui.RenderNotifications(os.Stdout, groups)
				return nil
			})

			if a.auth.IsStaff() || a.auth.IsAdmin() {
				queuePoller := poller.New("orders", a.cfg.OrderPollInterval, a.log, func(ctx context.Context) error {
					queue, err := a.staff.Queue(ctx)
					if err != nil {
						return err
					}
					fmt.Println("---")
					tui.RenderQueue(os.Stdout, queue)
					return nil
				})
				go queuePoller.Run(ctx)
			}

			notifPoller.Run(ctx)
			return nil
		},
	}
}

func (a *app) dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "admin: order stats",
		Action: func(c *cli.Context) error {
			if _, err := a.requireUser(c.Context); err != nil {
				return err
			}
			stats, err := a.reports.Stats(c.Context)
			if err != nil {
				return err
			}
			tui.RenderDashboard(os.Stdout, stats)
			return nil
		},
	}
}

func (a *app) reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "admin: export all orders as CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Usage: "output file (default stdout)"},
		},
		Action: func(c *cli.Context) error {
			if _, err := a.requireUser(c.Context); err != nil {
				return err
			}

			out := os.Stdout
			if path := c.String("out"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return a.reports.ExportOrders(c.Context, out)
		},
	}
}

func (a *app) categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "list menu categories",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "admin: create a category",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					if _, err := a.requireUser(c.Context); err != nil {
						return err
					}
					cat, err := a.categories.Create(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					fmt.Printf("Category %d: %s\n", cat.CategoryID, cat.CategoryName)
					return nil
				},
			},
			{
				Name:      "rm",
				Usage:     "admin: delete a category",
				ArgsUsage: "<category-id>",
				Action: func(c *cli.Context) error {
					if _, err := a.requireUser(c.Context); err != nil {
						return err
					}
					var categoryID int64
					if _, err := fmt.Sscanf(c.Args().First(), "%d", &categoryID); err != nil {
						return fmt.Errorf("invalid category id %q", c.Args().First())
					}
					return a.categories.Delete(c.Context, categoryID)
				},
			},
		},
		Action: func(c *cli.Context) error {
			cats, err := a.categories.List(c.Context)
			if err != nil {
				return err
			}
			for _, cat := range cats {
				fmt.Printf("%d\t%s\n", cat.CategoryID, cat.CategoryName)
			}
			return nil
		},
	}
}

func (a *app) canteensCommand() *cli.Command {
	return &cli.Command{
		Name:  "canteens",
		Usage: "list campus canteens",
		Action: func(c *cli.Context) error {
			cs, err := a.canteens.List(c.Context)
			if err != nil {
				return err
			}
			for _, cn := range cs {
				fmt.Printf("%d\t%s\t%s\n", cn.CanteenID, cn.Name, cn.Location)
			}
			return nil
		},
	}
}

func (a *app) inventoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "inventory",
		Usage: "staff: stock levels",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "low", Usage: "only low or out-of-stock items"},
		},
		Action: func(c *cli.Context) error {
			if _, err := a.requireUser(c.Context); err != nil {
				return err
			}

			var (
				inv []model.Inventory
				err error
			)
			if c.Bool("low") {
				inv, err = a.inventory.LowStock(c.Context)
			} else {
				inv, err = a.inventory.List(c.Context)
			}
			if err != nil {
				return err
			}
			tui.RenderInventory(os.Stdout, inv)
			return nil
		},
	}
}
