package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/model"
	"github.com/Grefendor/drinks/internal/report"

	"github.com/shopspring/decimal"
)

const defaultReportFile = "latest_report.pdf"

// Lookuper 以條碼查商品名稱，新增商品時預填
type Lookuper interface {
	ProductName(ctx context.Context, barcode string) (string, error)
}

// Kiosk 為終端機前台：PIN 登入後一般使用者掃碼扣庫存，管理員進入選單
type Kiosk struct {
	svc    ledger.Service
	in     prompter
	out    io.Writer
	lookup Lookuper
}

func NewKiosk(svc ledger.Service, in prompter, out io.Writer, lookup Lookuper) *Kiosk {
	return &Kiosk{svc: svc, in: in, out: out, lookup: lookup}
}

var failMessages = []struct {
	err error
	msg string
}{
	{ledger.ErrUnknownBarcode, "unknown barcode"},
	{ledger.ErrNotFound, "not found"},
	{ledger.ErrInsufficientStock, "not enough stock"},
	{ledger.ErrInvalidQuantity, "invalid quantity"},
	{ledger.ErrInvalidInput, "invalid input"},
	{ledger.ErrDuplicatePin, "PIN already in use"},
	{ledger.ErrDuplicateBarcode, "barcode already exists"},
	{ledger.ErrAmbiguousName, "several users share that name"},
	{ledger.ErrSelfDeletion, "you cannot delete yourself"},
	{ledger.ErrLastAdminProtected, "the last admin cannot be deleted"},
	{ledger.ErrAdminRequired, "the first user must be an admin"},
	{ledger.ErrAlreadyInitialized, "an admin already exists"},
	{ledger.ErrBusy, "the store is busy, try again"},
}

func (k *Kiosk) printf(format string, args ...any) {
	fmt.Fprintf(k.out, format, args...)
}

func (k *Kiosk) fail(err error) {
	for _, m := range failMessages {
		if errors.Is(err, m.err) {
			k.printf("\033[1;31mError:\033[0m %s\n", m.msg)
			return
		}
	}
	k.printf("\033[1;31mError:\033[0m %v\n", err)
}

// Run 直到輸入 exit 或 EOF 為止
func (k *Kiosk) Run(ctx context.Context) error {
	err := k.loop(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (k *Kiosk) loop(ctx context.Context) error {
	if err := k.ensureAdmin(ctx); err != nil {
		return err
	}

	for {
		pin, err := k.in.Secret("\nPIN (or 'exit'): ")
		if err != nil {
			return err
		}
		if pin == "" {
			continue
		}
		if strings.EqualFold(pin, "exit") {
			return nil
		}

		u, err := k.svc.Authenticate(ctx, pin)
		if errors.Is(err, ledger.ErrNotFound) {
			k.printf("Wrong PIN.\n")
			continue
		}
		if err != nil {
			k.fail(err)
			continue
		}

		if u.IsAdmin {
			err = k.adminMenu(ctx, u)
		} else {
			err = k.userFlow(ctx, u)
		}
		if err != nil {
			return err
		}
	}
}

// ensureAdmin 首次啟動 (尚無使用者) 時建立初始管理員
func (k *Kiosk) ensureAdmin(ctx context.Context) error {
	n, err := k.svc.UserCount(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	k.printf("=== First start: create the initial admin ===\n")
	for {
		pin, err := k.in.Secret("Admin PIN: ")
		if err != nil {
			return err
		}
		name, err := k.in.Line("Admin name: ")
		if err != nil {
			return err
		}
		if pin == "" || name == "" {
			k.printf("PIN and name must not be empty.\n")
			continue
		}

		_, err = k.svc.CreateInitialAdmin(ctx, pin, name)
		switch {
		case err == nil:
			k.printf("Initial admin %q created.\n\n", name)
			return nil
		case errors.Is(err, ledger.ErrAlreadyInitialized):
			// 另一個前台已完成初始化
			return nil
		case errors.Is(err, ledger.ErrInvalidInput), errors.Is(err, ledger.ErrBusy):
			k.fail(err)
		default:
			return err
		}
	}
}

// userFlow "*N" 設定下一次掃碼的數量，空行登出
func (k *Kiosk) userFlow(ctx context.Context, u model.User) error {
	k.printf("\nHello %s! Scan a barcode (*N sets the quantity, empty line logs out).\n", u.Name)
	qty := 1
	for {
		line, err := k.in.Line("scan> ")
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		if strings.HasPrefix(line, "*") {
			n, err := strconv.Atoi(strings.TrimSpace(line[1:]))
			if err != nil || n < 1 {
				k.printf("Invalid quantity %q.\n", line[1:])
				continue
			}
			qty = n
			k.printf("Quantity set to %d.\n", qty)
			continue
		}

		if err := k.svc.RecordTransaction(ctx, u.ID, line, qty); err != nil {
			k.fail(err)
			continue
		}
		k.printf("Booked %d x %s. Bye %s!\n", qty, line, u.Name)
		return nil
	}
}

const adminMenuText = `
=== Admin menu ===
1) Create user
2) Create product
3) Show inventory
4) Edit stock
5) Edit product
6) Delete product
7) Delete user
8) Change PIN
9) Consumption report
10) Export PDF report
0) Logout
`

func (k *Kiosk) adminMenu(ctx context.Context, u model.User) error {
	for {
		k.printf("%s", adminMenuText)
		choice, err := k.in.Line("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = k.createUser(ctx)
		case "2":
			err = k.createProduct(ctx)
		case "3":
			err = k.showInventory(ctx)
		case "4":
			err = k.editStock(ctx)
		case "5":
			err = k.editProduct(ctx)
		case "6":
			err = k.deleteProduct(ctx)
		case "7":
			err = k.deleteUser(ctx, u)
		case "8":
			err = k.changePin(ctx, u)
		case "9":
			err = k.showConsumption(ctx)
		case "10":
			err = k.exportReport(ctx)
		case "0", "q", "logout":
			return nil
		default:
			k.printf("Invalid choice.\n")
			continue
		}
		if err != nil {
			return err
		}
	}
}

// 選單動作只回傳輸入端錯誤；帳本錯誤直接顯示

func (k *Kiosk) createUser(ctx context.Context) error {
	pin, err := k.in.Secret("New PIN: ")
	if err != nil {
		return err
	}
	name, err := k.in.Line("Name: ")
	if err != nil {
		return err
	}
	admin, err := k.confirm("Admin? (y/N): ")
	if err != nil {
		return err
	}

	if _, err := k.svc.CreateUser(ctx, pin, name, admin); err != nil {
		k.fail(err)
		return nil
	}
	k.printf("User %q created.\n", name)
	return nil
}

func (k *Kiosk) createProduct(ctx context.Context) error {
	barcode, err := k.in.Line("Barcode: ")
	if err != nil {
		return err
	}

	suggested := ""
	if k.lookup != nil && barcode != "" {
		name, err := k.lookup.ProductName(ctx, barcode)
		if err != nil {
			k.printf("Online lookup failed: %v\n", err)
		} else {
			k.printf("Found online: %s\n", name)
			suggested = name
		}
	}

	name, err := k.withDefault("Name", suggested)
	if err != nil {
		return err
	}
	count, ok, err := k.readCount("Initial stock (default 0): ", 0)
	if err != nil || !ok {
		return err
	}
	price, ok, err := k.readPrice("Price (empty for none): ", decimal.NullDecimal{})
	if err != nil || !ok {
		return err
	}

	p, err := k.svc.CreateProduct(ctx, barcode, name, count, price)
	if err != nil {
		k.fail(err)
		return nil
	}
	k.printf("Product %q created with stock %d.\n", p.Name, p.Count)
	return nil
}

func (k *Kiosk) showInventory(ctx context.Context) error {
	products, err := k.svc.Inventory(ctx)
	if err != nil {
		k.fail(err)
		return nil
	}
	writeInventory(k.out, products)
	return nil
}

func (k *Kiosk) editStock(ctx context.Context) error {
	p, ok, err := k.readProduct(ctx)
	if err != nil || !ok {
		return err
	}
	count, ok, err := k.readCount(fmt.Sprintf("New stock for %q (currently %d): ", p.Name, p.Count), p.Count)
	if err != nil || !ok {
		return err
	}

	if err := k.svc.UpdateProductCount(ctx, p.Barcode, count); err != nil {
		k.fail(err)
		return nil
	}
	k.printf("Stock updated.\n")
	return nil
}

func (k *Kiosk) editProduct(ctx context.Context) error {
	p, ok, err := k.readProduct(ctx)
	if err != nil || !ok {
		return err
	}
	name, err := k.withDefault("Name", p.Name)
	if err != nil {
		return err
	}
	price, ok, err := k.readPrice(fmt.Sprintf("Price [%s] ('-' clears): ", money(p.Price)), p.Price)
	if err != nil || !ok {
		return err
	}

	if err := k.svc.UpdateProduct(ctx, p.Barcode, name, price); err != nil {
		k.fail(err)
		return nil
	}
	k.printf("Product updated.\n")
	return nil
}

func (k *Kiosk) deleteProduct(ctx context.Context) error {
	p, ok, err := k.readProduct(ctx)
	if err != nil || !ok {
		return err
	}
	yes, err := k.confirm(fmt.Sprintf("Delete %q? (y/N): ", p.Name))
	if err != nil || !yes {
		return err
	}

	if err := k.svc.DeleteProduct(ctx, p.Barcode); err != nil {
		k.fail(err)
		return nil
	}
	k.printf("Product deleted.\n")
	return nil
}

// deleteUser 同名時改以 ID 指定
func (k *Kiosk) deleteUser(ctx context.Context, acting model.User) error {
	name, err := k.in.Line("Name of the user to delete: ")
	if err != nil {
		return err
	}

	err = k.svc.DeleteUser(ctx, name, acting.ID)
	if errors.Is(err, ledger.ErrAmbiguousName) {
		id, ok, perr := k.pickUser(ctx, name)
		if perr != nil || !ok {
			return perr
		}
		err = k.svc.DeleteUserByID(ctx, id, acting.ID)
	}
	if err != nil {
		k.fail(err)
		return nil
	}
	k.printf("User deleted.\n")
	return nil
}

// changePin 名稱留空時變更自己的 PIN
func (k *Kiosk) changePin(ctx context.Context, acting model.User) error {
	name, err := k.in.Line("Name (empty for yourself): ")
	if err != nil {
		return err
	}
	pin, err := k.in.Secret("New PIN: ")
	if err != nil {
		return err
	}

	if name == "" {
		err = k.svc.UpdatePinByID(ctx, acting.ID, pin)
	} else {
		err = k.svc.UpdatePin(ctx, name, pin)
		if errors.Is(err, ledger.ErrAmbiguousName) {
			id, ok, perr := k.pickUser(ctx, name)
			if perr != nil || !ok {
				return perr
			}
			err = k.svc.UpdatePinByID(ctx, id, pin)
		}
	}
	if err != nil {
		k.fail(err)
		return nil
	}
	k.printf("PIN changed.\n")
	return nil
}

func (k *Kiosk) showConsumption(ctx context.Context) error {
	rows, err := k.svc.ConsumptionReport(ctx)
	if err != nil {
		k.fail(err)
		return nil
	}
	writeConsumption(k.out, rows)
	return nil
}

func (k *Kiosk) exportReport(ctx context.Context) error {
	path, err := k.withDefault("File", defaultReportFile)
	if err != nil {
		return err
	}
	if err := exportPDF(ctx, k.svc, path); err != nil {
		k.fail(err)
		return nil
	}
	k.printf("Report written to %s.\n", path)
	return nil
}

// exportPDF 先在記憶體產生完整 PDF 再寫檔，失敗時不留下半個檔案
func exportPDF(ctx context.Context, svc ledger.Service, path string) error {
	d, err := report.Collect(ctx, svc)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := report.Render(&buf, d); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (k *Kiosk) readProduct(ctx context.Context) (model.Product, bool, error) {
	barcode, err := k.in.Line("Barcode: ")
	if err != nil {
		return model.Product{}, false, err
	}
	p, err := k.svc.GetProduct(ctx, barcode)
	if err != nil {
		k.fail(err)
		return model.Product{}, false, nil
	}
	return p, true, nil
}

func (k *Kiosk) pickUser(ctx context.Context, name string) (int, bool, error) {
	users, err := k.svc.ListUsers(ctx)
	if err != nil {
		k.fail(err)
		return 0, false, nil
	}
	var same []model.User
	for _, u := range users {
		if u.Name == name {
			same = append(same, u)
		}
	}
	k.printf("Several users are named %q:\n", name)
	writeUsers(k.out, same)

	line, err := k.in.Line("ID: ")
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(line)
	if err != nil {
		k.printf("Invalid ID %q.\n", line)
		return 0, false, nil
	}
	return id, true, nil
}

func (k *Kiosk) withDefault(label, def string) (string, error) {
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}
	v, err := k.in.Line(prompt)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

func (k *Kiosk) confirm(prompt string) (bool, error) {
	v, err := k.in.Line(prompt)
	if err != nil {
		return false, err
	}
	v = strings.ToLower(v)
	return strings.HasPrefix(v, "y") || strings.HasPrefix(v, "j"), nil
}

// readCount 空白輸入採用 def；負數交給帳本判定
func (k *Kiosk) readCount(prompt string, def int) (int, bool, error) {
	v, err := k.in.Line(prompt)
	if err != nil {
		return 0, false, err
	}
	if v == "" {
		return def, true, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		k.printf("Invalid number %q.\n", v)
		return 0, false, nil
	}
	return n, true, nil
}

// readPrice 空白輸入採用 def，"-" 清除價格
func (k *Kiosk) readPrice(prompt string, def decimal.NullDecimal) (decimal.NullDecimal, bool, error) {
	v, err := k.in.Line(prompt)
	if err != nil {
		return decimal.NullDecimal{}, false, err
	}
	switch v {
	case "":
		return def, true, nil
	case "-":
		return decimal.NullDecimal{}, true, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
	if err != nil {
		k.printf("Invalid price %q.\n", v)
		return decimal.NullDecimal{}, false, nil
	}
	return decimal.NewNullDecimal(d), true, nil
}
