package cli

import (
	"errors"
	"fmt"
	"strings"

	catalogdomain "github.com/sakuraclothing/store-cli/internal/catalog/domain"
	catalogrepo "github.com/sakuraclothing/store-cli/internal/catalog/repository"
	catalogservice "github.com/sakuraclothing/store-cli/internal/catalog/service"
	userdomain "github.com/sakuraclothing/store-cli/internal/user/domain"
	userservice "github.com/sakuraclothing/store-cli/internal/user/service"
	"github.com/shopspring/decimal"
)

func (s *Shell) adminMenu() error {
	for {
		title("Admin Menu Page")
		fmt.Println("\t1. Add Users")
		fmt.Println("\t2. View User Details")
		fmt.Println("\t3. Add Product")
		fmt.Println("\t4. Edit Product")
		fmt.Println("\t5. Delete Product")
		fmt.Println("\t6. View Catalog")
		fmt.Println("\t7. View Catalog Insights")
		fmt.Println("\t8. Monitor Stock")
		fmt.Println("\t9. Logout")

		choice, err := s.readLine("\nEnter your choice: ")
		if err != nil {
			return err
		}

		var pageErr error
		switch choice {
		case "1":
			pageErr = s.addUserPage()
		case "2":
			pageErr = s.viewUsersPage()
		case "3":
			pageErr = s.addProductPage()
		case "4":
			pageErr = s.editProductPage()
		case "5":
			pageErr = s.deleteProductPage()
		case "6":
			pageErr = s.viewCatalogPage()
		case "7":
			pageErr = s.insightsPage()
		case "8":
			pageErr = s.monitorStockPage()
		case "9":
			sayWarn("\nLogging out...\nReturning to Main Menu...")
			return nil
		default:
			sayErr("\nSorry, invalid option. Please try again.")
		}
		if pageErr != nil {
			return pageErr
		}
	}
}

func (s *Shell) addUserPage() error {
	title("Add New Users Page")

	username, err := s.readLine("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := s.readLine("Enter Password: ")
	if err != nil {
		return err
	}

	fmt.Println("\nPlease select the user role:")
	fmt.Println("\t1. Admin")
	fmt.Println("\t2. User")
	roleChoice, err := s.readLine("\nEnter role number: ")
	if err != nil {
		return err
	}

	var role string
	switch roleChoice {
	case "1":
		role = userdomain.RoleAdmin
	case "2":
		role = userdomain.RoleUser
	default:
		sayErr("\nInvalid role selected. Only 'admin' or 'user' allowed.")
		return nil
	}

	acct, err := s.users.AddUser(s.ctx, userdomain.AddUserRequest{Username: username, Password: password, Role: role})
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserAlreadyExists):
			sayErr("\nUsername already exists!")
		case errors.Is(err, userservice.ErrInvalidRole):
			sayErr("\nInvalid role selected. Only 'admin' or 'user' allowed.")
		case errors.Is(err, userservice.ErrInvalidInput):
			sayErr("\nUsername and password must not be empty.")
		default:
			return err
		}
		return nil
	}

	sayOK("\nUser %s with %q role has been added successfully!", acct.Username, acct.Role)
	return nil
}

func (s *Shell) viewUsersPage() error {
	title("Registered Users Page")

	accounts, err := s.users.ListUsers(s.ctx)
	if err != nil {
		return err
	}
	renderUsersTable(accounts)
	return nil
}

func (s *Shell) viewCatalogPage() error {
	title("Catalog")

	products, err := s.catalog.ListProducts(s.ctx)
	if err != nil {
		return err
	}
	renderCatalogTable(products)
	return nil
}

// collectSizeStock menanyakan kuantitas untuk tiap ukuran. Dipakai add dan
// edit: saat edit, semua ukuran harus dimasukkan ulang, hitungan lama untuk
// ukuran yang tidak disebut hangus.
func (s *Shell) collectSizeStock(sizes []string) ([]string, map[string]int, error) {
	cleaned := make([]string, 0, len(sizes))
	stock := make(map[string]int, len(sizes))
	for _, raw := range sizes {
		size := strings.ToUpper(strings.TrimSpace(raw))
		if size == "" {
			continue
		}
		qty, err := s.readInt(fmt.Sprintf("Enter product quantity for size %s: ", size))
		if err != nil {
			return nil, nil, err
		}
		if qty < 0 {
			return nil, nil, errBadInput
		}
		if _, dup := stock[size]; !dup {
			cleaned = append(cleaned, size)
		}
		stock[size] = qty
	}
	if len(cleaned) == 0 {
		return nil, nil, errBadInput
	}
	return cleaned, stock, nil
}

func (s *Shell) addProductPage() error {
	title("Add New Products")

	name, err := s.readLine("Enter Product Name: ")
	if err != nil {
		return err
	}
	price, err := s.readDecimal("Enter Product Price: ")
	if err != nil {
		if s.reportInput(err) {
			return nil
		}
		return err
	}
	sizesRaw, err := s.readLine("Enter Product Sizes (comma-separated): ")
	if err != nil {
		return err
	}

	sizes, stock, err := s.collectSizeStock(strings.Split(sizesRaw, ","))
	if err != nil {
		if s.reportInput(err) {
			return nil
		}
		return err
	}

	p, err := s.catalog.AddProduct(s.ctx, catalogdomain.AddProductRequest{
		Name:  name,
		Price: price,
		Sizes: sizes,
		Stock: stock,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogrepo.ErrProductConflict):
			sayErr("\nA product with this name already exists.")
		case errors.Is(err, catalogservice.ErrInvalidInput):
			sayErr("\nInvalid input. Ensure name, sizes and quantities are filled in.")
		default:
			return err
		}
		return nil
	}

	sayOK("\nProduct %q added successfully with ID %d.", p.Name, p.ID)
	return nil
}

func (s *Shell) editProductPage() error {
	title("Edit Products")

	id, err := s.readInt("Enter Product ID: ")
	if err != nil {
		if s.reportInput(err) {
			return nil
		}
		return err
	}

	current, err := s.catalog.GetProduct(s.ctx, id)
	if err != nil {
		if isNotFound(err) {
			sayErr("\nProduct not found.")
			return nil
		}
		return err
	}
	fineColor.Printf("\nEditing %s...\n\n", current.Name)

	req := catalogdomain.UpdateProductRequest{}

	name, err := s.readLine(fmt.Sprintf("Name (%s): ", current.Name))
	if err != nil {
		return err
	}
	if name != "" {
		req.Name = &name
	}

	priceRaw, err := s.readLine(fmt.Sprintf("Price (%s): ", money(current.Price)))
	if err != nil {
		return err
	}
	if priceRaw != "" {
		price, convErr := decimal.NewFromString(priceRaw)
		if convErr != nil {
			sayErr("\nInvalid number entered.")
			return nil
		}
		req.Price = &price
	}

	sizesRaw, err := s.readLine(fmt.Sprintf("Sizes, comma-separated (%s, blank keeps current): ", strings.Join(current.Sizes, ", ")))
	if err != nil {
		return err
	}
	if sizesRaw != "" {
		sizes, stock, err := s.collectSizeStock(strings.Split(sizesRaw, ","))
		if err != nil {
			if s.reportInput(err) {
				return nil
			}
			return err
		}
		req.Sizes = sizes
		req.Stock = stock
	}

	p, err := s.catalog.EditProduct(s.ctx, id, req)
	if err != nil {
		switch {
		case isNotFound(err):
			sayErr("\nProduct not found.")
		case errors.Is(err, catalogrepo.ErrProductConflict):
			sayErr("\nA product with this name already exists.")
		case errors.Is(err, catalogservice.ErrInvalidInput):
			sayErr("\nInvalid input.")
		default:
			return err
		}
		return nil
	}

	sayOK("\nProduct %q updated successfully.", p.Name)
	return nil
}

func (s *Shell) deleteProductPage() error {
	title("Delete Products")

	id, err := s.readInt("Enter Product ID: ")
	if err != nil {
		if s.reportInput(err) {
			return nil
		}
		return err
	}

	current, err := s.catalog.GetProduct(s.ctx, id)
	if err != nil {
		if isNotFound(err) {
			sayErr("\nProduct not found.")
			return nil
		}
		return err
	}

	confirmed, err := s.readYesNo(fmt.Sprintf("\nAre you sure you want to delete %q?", current.Name))
	if err != nil {
		return err
	}
	if !confirmed {
		sayErr("\nProduct delete cancelled.")
		return nil
	}

	if err := s.catalog.DeleteProduct(s.ctx, id); err != nil {
		if isNotFound(err) {
			sayErr("\nProduct not found.")
			return nil
		}
		return err
	}

	sayOK("\n%q deleted successfully.", current.Name)
	return nil
}

func (s *Shell) insightsPage() error {
	title("Catalog Insights Page")

	ins, err := s.catalog.Insights(s.ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Total Products: %d\n", ins.TotalProducts)
	fmt.Printf("Total Stock Units: %d\n", ins.TotalStock)
	fmt.Printf("Total Inventory Value: %s\n", money(ins.InventoryValue))
	return nil
}

func (s *Shell) monitorStockPage() error {
	title("Monitor Stock Page")

	levels, err := s.catalog.MonitorStock(s.ctx)
	if err != nil {
		return err
	}
	renderStockLevels(levels)
	return nil
}
