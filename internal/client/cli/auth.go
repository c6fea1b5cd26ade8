package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/healthsync/internal/api"
	"github.com/dmitrijs2005/healthsync/internal/common"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.report(err)
	}
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return a.report(err)
	}
	height, err := GetFloat(a.reader, "Enter height in cm (optional)", a.out)
	if err != nil {
		return a.report(err)
	}
	weight, err := GetFloat(a.reader, "Enter weight in kg (optional)", a.out)
	if err != nil {
		return a.report(err)
	}
	age, err := GetInt(a.reader, "Enter age (optional)", a.out)
	if err != nil {
		return a.report(err)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	in := api.RegisterInput{
		Email:    email,
		Password: string(password),
		Name:     name,
		Height:   height,
		Weight:   weight,
		Age:      age,
	}
	if err := in.Validate(); err != nil {
		return a.report(err)
	}

	resp, err := a.api.Register(ctx, in)
	if err != nil {
		return a.report(err)
	}

	a.email = resp.Email
	fmt.Fprintf(a.out, "Registered %s (id %s)\n", resp.Email, resp.UserID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.report(err)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	in := api.LoginInput{Email: email, Password: string(password)}
	if err := in.Validate(); err != nil {
		return a.report(err)
	}

	resp, err := a.api.Login(ctx, in)
	if err != nil {
		return a.report(err)
	}

	a.email = resp.Email
	fmt.Fprintf(a.out, "Logged in as %s\n", resp.Profile.Name)
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.api.Refresh(ctx); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Session refreshed")
	return nil
}

func (a *App) Logout(context.Context) error {
	a.api.Logout()
	a.email = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
