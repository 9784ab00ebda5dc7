// Package cli berisi shell menu interaktif: menu bernomor dengan gerbang
// role, semuanya loop eksplisit per level menu (bukan re-entry rekursif).
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sakuraclothing/store-cli/internal/cart"
	catalogrepo "github.com/sakuraclothing/store-cli/internal/catalog/repository"
	catalogservice "github.com/sakuraclothing/store-cli/internal/catalog/service"
	orderservice "github.com/sakuraclothing/store-cli/internal/order/service"
	userdomain "github.com/sakuraclothing/store-cli/internal/user/domain"
	userservice "github.com/sakuraclothing/store-cli/internal/user/service"
)

type Shell struct {
	rl       *readline.Instance
	users    userservice.UserService
	catalog  catalogservice.CatalogService
	checkout orderservice.CheckoutService

	// Keranjang hidup selama proses, dikosongkan utuh saat checkout.
	cart    *cart.Cart
	session *userdomain.Session
	ctx     context.Context
}

func NewShell(users userservice.UserService, catalog catalogservice.CatalogService, checkout orderservice.CheckoutService) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &Shell{
		rl:       rl,
		users:    users,
		catalog:  catalog,
		checkout: checkout,
		cart:     cart.New(),
		ctx:      context.Background(),
	}, nil
}

func (s *Shell) Close() error {
	return s.rl.Close()
}

// Run menjalankan menu utama sampai operator memilih keluar.
func (s *Shell) Run() error {
	for {
		titleColor.Println("\n==========  Welcome to the Sakura Clothing Store  ==========")
		fmt.Println("\nPlease select from the following options:")
		fmt.Println("\t1. Login")
		fmt.Println("\t2. Register")
		fmt.Println("\t3. Exit")

		choice, err := s.readLine("\nEnter your choice: ")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			if err := s.loginPage(); err != nil {
				return s.finish(err)
			}
		case "2":
			if err := s.registerPage(); err != nil {
				return s.finish(err)
			}
		case "3":
			sayWarn("\nExiting from the system...")
			return nil
		default:
			sayErr("\nSorry, invalid option. Please try again.")
		}
	}
}

// finish memetakan interrupt (Ctrl+C / Ctrl+D) menjadi keluar normal.
func (s *Shell) finish(err error) error {
	if errors.Is(err, errInterrupted) {
		sayWarn("\nExiting from the system...")
		return nil
	}
	return err
}

func (s *Shell) loginPage() error {
	title("Login Page")

	username, err := s.readLine("Please enter your Username: ")
	if err != nil {
		return err
	}
	password, err := s.readLine("Please enter your Password: ")
	if err != nil {
		return err
	}

	session, err := s.users.Login(s.ctx, userdomain.LoginRequest{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			sayErr("\nInvalid Username or Password. Please try again!")
			return nil
		}
		return err
	}

	s.session = session
	sayOK("\nWelcome %s! You are now logged in.", session.Username)

	if session.IsAdmin() {
		err = s.adminMenu()
	} else {
		err = s.userMenu()
	}
	s.session = nil
	return err
}

func (s *Shell) registerPage() error {
	title("Register Page")

	username, err := s.readLine("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := s.readLine("Enter Password: ")
	if err != nil {
		return err
	}

	if _, err := s.users.Register(s.ctx, userdomain.RegisterRequest{Username: username, Password: password}); err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserAlreadyExists):
			sayErr("\nUsername already exists.")
		case errors.Is(err, userservice.ErrInvalidInput):
			sayErr("\nUsername and password must not be empty.")
		default:
			return err
		}
		return nil
	}

	sayOK("\nUser %q registered successfully.", username)
	// Setelah registrasi langsung lanjut ke halaman login.
	return s.loginPage()
}

// --- Menu customer ---

func (s *Shell) userMenu() error {
	for {
		title(fmt.Sprintf("%s Menu Page", strings.ToUpper(s.session.Role[:1])+s.session.Role[1:]))
		fmt.Println("\t1. View Catalog")
		fmt.Println("\t2. Purchase History")
		fmt.Println("\t3. View Cart")
		fmt.Println("\t4. Return Item")
		fmt.Println("\t5. Logout")

		choice, err := s.readLine("\nEnter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := s.catalogPage(); err != nil {
				return err
			}
		case "2":
			if err := s.historyPage(); err != nil {
				return err
			}
		case "3":
			if err := s.cartPage(); err != nil {
				return err
			}
		case "4":
			if err := s.returnPage(); err != nil {
				return err
			}
		case "5":
			sayWarn("\nLogging out...\nReturning to Main Menu...")
			return nil
		default:
			sayErr("\nSorry, invalid option. Please try again.")
		}
	}
}

func (s *Shell) catalogPage() error {
	for {
		title("Catalog")

		products, err := s.catalog.ListProducts(s.ctx)
		if err != nil {
			return err
		}
		renderCatalogTable(products)

		fmt.Println("\n\t1. Search Product")
		fmt.Println("\t2. Filter Products")
		fmt.Println("\t3. Add to Cart")
		fmt.Println("\t4. Back to Menu")

		choice, err := s.readLine("\nEnter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := s.searchPage(); err != nil {
				return err
			}
		case "2":
			if err := s.filterPage(); err != nil {
				return err
			}
		case "3":
			if err := s.addToCartPage(); err != nil {
				return err
			}
		case "4":
			return nil
		default:
			sayErr("\nInvalid choice. Please try again...")
		}
	}
}

func (s *Shell) searchPage() error {
	title("Search Product Page")

	keyword, err := s.readLine("Enter keyword: ")
	if err != nil {
		return err
	}

	matches, err := s.catalog.SearchProducts(s.ctx, keyword)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		sayErr("\nNo matching products found...")
		return nil
	}
	fmt.Println()
	for _, p := range matches {
		renderProductRow(p)
	}
	return nil
}

func (s *Shell) filterPage() error {
	for {
		title("Filter Products")
		fmt.Println("\t1. Filter by Size")
		fmt.Println("\t2. Filter by Price")
		fmt.Println("\t3. Back to Menu")

		choice, err := s.readLine("\nEnter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			size, err := s.readLine("Enter the size to filter items: ")
			if err != nil {
				return err
			}
			matches, err := s.catalog.FilterBySize(s.ctx, size)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				sayErr("\nNo products found for the given size...")
				continue
			}
			fmt.Println()
			for _, p := range matches {
				renderProductRow(p)
			}
		case "2":
			min, err := s.readDecimal("Enter the minimum price: ")
			if err != nil {
				if handled := s.reportInput(err); handled {
					continue
				}
				return err
			}
			max, err := s.readDecimal("Enter the maximum price: ")
			if err != nil {
				if handled := s.reportInput(err); handled {
					continue
				}
				return err
			}
			matches, err := s.catalog.FilterByPrice(s.ctx, min, max)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				sayErr("\nNo products found for the given price...")
				continue
			}
			fmt.Println()
			for _, p := range matches {
				renderProductRow(p)
			}
		case "3":
			return nil
		default:
			sayErr("\nInvalid choice. Please try again...")
		}
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, catalogrepo.ErrProductNotFound)
}

// reportInput melaporkan error input operator inline dan mengembalikan true;
// error lain diteruskan untuk ditangani pemanggil.
func (s *Shell) reportInput(err error) bool {
	if errors.Is(err, errBadInput) {
		sayErr("\nInvalid input. Please try again...")
		return true
	}
	return false
}

func (s *Shell) addToCartPage() error {
	title("Add to Cart")

	id, err := s.readInt("Enter ID of the item you want to add: ")
	if err != nil {
		if s.reportInput(err) {
			return nil
		}
		return err
	}

	size, err := s.readLine("Enter Size: ")
	if err != nil {
		return err
	}
	quantity, err := s.readInt("Enter quantity: ")
	if err != nil {
		if s.reportInput(err) {
			return nil
		}
		return err
	}

	line, err := s.checkout.AddToCart(s.ctx, s.cart, id, size, quantity)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidSize):
			sayErr("\nSelected size is not available in stock!")
		case errors.Is(err, orderservice.ErrInsufficientStock):
			sayErr("\nSorry! Requested quantity exceeds available stock.")
		case errors.Is(err, orderservice.ErrInvalidQuantity):
			sayErr("\nInvalid quantity.")
		case isNotFound(err):
			sayErr("\nNo product found for the given ID...")
		default:
			return err
		}
		return nil
	}

	sayOK("\nSuccessfully added %d x %s (Size %s) to cart.", line.Quantity, line.Product.Name, line.Size)

	now, err := s.readYesNo("\nProceed to checkout now?")
	if err != nil {
		return err
	}
	if now {
		return s.checkoutPage()
	}
	sayWarn("\nCheckout postponed. Returning to catalog menu...")
	return nil
}

func (s *Shell) cartPage() error {
	title("Your Cart")

	if s.cart.IsEmpty() {
		sayErr("Your cart is empty. Add some items first!")
		return nil
	}

	fmt.Println("Items in your cart:")
	for _, line := range s.cart.Lines() {
		fmt.Printf("%s (Size %s) x %d = %s\n", line.Product.Name, line.Size, line.Quantity, money(line.Subtotal()))
	}
	fineColor.Printf("\nYour total amount: %s\n", money(s.cart.Total()))

	proceed, err := s.readYesNo("\nProceed to checkout?")
	if err != nil {
		return err
	}
	if !proceed {
		sayWarn("\nCheckout cancelled...")
		return nil
	}
	return s.checkoutPage()
}

func (s *Shell) checkoutPage() error {
	title("Checkout Page")

	rec, err := s.checkout.Checkout(s.ctx, s.cart)
	if err != nil {
		if errors.Is(err, orderservice.ErrEmptyCart) {
			sayErr("Your cart is empty. Add some items first!")
			return nil
		}
		return err
	}

	sayOK("Your order was successful! Thank you for your purchase. (%d item(s))", len(rec.Items))
	return nil
}

func (s *Shell) historyPage() error {
	title("Purchase History")

	recs, err := s.checkout.History(s.ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		sayErr("No purchase history found.")
		return nil
	}
	renderHistory(recs)
	return nil
}

func (s *Shell) returnPage() error {
	title("Return Items")

	flat, err := s.checkout.FlattenedItems(s.ctx)
	if err != nil {
		return err
	}
	if len(flat) == 0 {
		sayErr("No purchases to return.")
		return nil
	}

	fmt.Println("Your purchase history:")
	renderFlatItems(flat)

	index, err := s.readInt("Which item do you want to return: ")
	if err != nil {
		if s.reportInput(err) {
			return nil
		}
		return err
	}
	quantity, err := s.readInt("How many do you want to return: ")
	if err != nil {
		if s.reportInput(err) {
			return nil
		}
		return err
	}

	res, err := s.checkout.ReturnItem(s.ctx, index, quantity)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidSelection):
			sayErr("\nInvalid selection. Please choose a valid item number.")
		case errors.Is(err, orderservice.ErrInvalidQuantity):
			sayErr("\nInvalid quantity.")
		case errors.Is(err, orderservice.ErrSizeMismatch):
			sayErr("\nSize mismatch: the product no longer carries that size.")
		case isNotFound(err):
			sayErr("\nReturned item not found in catalog.")
		default:
			return err
		}
		return nil
	}

	sayOK("\nSuccessfully returned %d x %s (Size %s).", res.Quantity, res.ItemName, res.Size)
	return nil
}
