package console

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

func (h *Handler) adminMenu(ctx context.Context) {
	for {
		fmt.Fprintln(h.out, "\n"+header("=== ADMINISTRATION ==="))
		fmt.Fprintln(h.out, "1. Create a user account")
		fmt.Fprintln(h.out, "2. List user accounts")
		fmt.Fprintln(h.out, "3. Log in")
		fmt.Fprintln(h.out, "4. Back")

		switch h.prompt.ReadInt("\nChoice: ") {
		case 1:
			h.createUser(ctx)
		case 2:
			h.listUsers(ctx)
		case 3:
			h.logIn(ctx)
		case 4:
			return
		default:
			if h.prompt.eof {
				return
			}
			fmt.Fprintln(h.out, failure("Invalid choice."))
		}
	}
}

func (h *Handler) createUser(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== NEW USER ACCOUNT ==="))
	req := &model.CreateUserRequest{
		Username: h.prompt.ReadString("Username: "),
		Password: h.prompt.ReadString("Password: "),
	}

	fmt.Fprintln(h.out, "Role:")
	fmt.Fprintln(h.out, "1. Admin")
	fmt.Fprintln(h.out, "2. Physician")
	fmt.Fprintln(h.out, "3. Nurse")
	fmt.Fprintln(h.out, "4. Receptionist")
	switch h.prompt.ReadInt("Choice: ") {
	case 1:
		req.Role = model.RoleAdmin
	case 2:
		req.Role = model.RolePhysician
	case 3:
		req.Role = model.RoleNurse
	default:
		req.Role = model.RoleReceptionist
	}

	if _, err := h.svc.Accounts.CreateUser(ctx, req); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nUser account created."))
}

func (h *Handler) listUsers(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== USER ACCOUNTS ==="))
	for _, u := range h.svc.Accounts.ListUsers(ctx) {
		fmt.Fprintln(h.out, divider())
		fmt.Fprintf(h.out, "ID: %d\n", u.ID)
		fmt.Fprintf(h.out, "Username: %s\n", u.Username)
		fmt.Fprintf(h.out, "Role: %s\n", u.Role)
		if u.LastLogin != nil {
			fmt.Fprintf(h.out, "Last login: %s\n", *u.LastLogin)
		}
	}
}

func (h *Handler) logIn(ctx context.Context) {
	username := h.prompt.ReadString("Username: ")
	password := h.prompt.ReadString("Password: ")

	user, err := h.svc.Accounts.Authenticate(ctx, username, password)
	if err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success(fmt.Sprintf("\nWelcome, %s (%s).", user.Username, user.Role)))
}
