package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/healthsync/internal/api"
	"github.com/dmitrijs2005/healthsync/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	loggedIn bool
	pingErr  error
	loginErr error

	registered []api.RegisterInput
	logins     []api.LoginInput
	exercises  []api.ExerciseInput
	meals      []api.NutritionInput
	refreshes  int
}

var _ client.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }
func (f *fakeAPI) LoggedIn() bool             { return f.loggedIn }
func (f *fakeAPI) Logout()                    { f.loggedIn = false }

func (f *fakeAPI) Register(_ context.Context, in api.RegisterInput) (*api.AuthResponse, error) {
	f.registered = append(f.registered, in)
	f.loggedIn = true
	return &api.AuthResponse{UserID: "u1", Email: in.Email, Profile: api.Profile{ID: "u1", Name: in.Name}}, nil
}

func (f *fakeAPI) Login(_ context.Context, in api.LoginInput) (*api.AuthResponse, error) {
	f.logins = append(f.logins, in)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.loggedIn = true
	return &api.AuthResponse{UserID: "u1", Email: in.Email, Profile: api.Profile{Name: "Ada"}}, nil
}

func (f *fakeAPI) Refresh(context.Context) error {
	if !f.loggedIn {
		return client.ErrNotLoggedIn
	}
	f.refreshes++
	return nil
}

func (f *fakeAPI) LogExercise(_ context.Context, in api.ExerciseInput) (*api.Exercise, error) {
	if !f.loggedIn {
		return nil, client.ErrNotLoggedIn
	}
	f.exercises = append(f.exercises, in)
	return &api.Exercise{ID: "e1", UserID: "u1", Name: in.Name, Duration: in.Duration, CaloriesBurned: in.CaloriesBurned}, nil
}

func (f *fakeAPI) LogNutrition(_ context.Context, in api.NutritionInput) (*api.Nutrition, error) {
	if !f.loggedIn {
		return nil, client.ErrNotLoggedIn
	}
	f.meals = append(f.meals, in)
	return &api.Nutrition{ID: "n1", UserID: "u1", FoodName: in.FoodName, Calories: in.Calories}, nil
}

func stubPassword(t *testing.T, pw string) *[][]byte {
	t.Helper()
	var handed [][]byte
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) {
		b := []byte(pw)
		handed = append(handed, b)
		return b, nil
	}
	t.Cleanup(func() { getPassword = orig })
	return &handed
}

func TestApp_RegisterThenLogExercise(t *testing.T) {
	handed := stubPassword(t, "pw")
	fake := &fakeAPI{}
	var out bytes.Buffer

	script := strings.Join([]string{
		"register", "ada@example.com", "Ada", "170", "60", "36",
		"exercise", "cycling", "45", "400",
		"exit",
	}, "\n") + "\n"

	app := newApp(fake, strings.NewReader(script), &out)
	app.Run(context.Background())

	require.Len(t, fake.registered, 1)
	assert.Equal(t, api.RegisterInput{
		Email: "ada@example.com", Password: "pw", Name: "Ada", Height: 170, Weight: 60, Age: 36,
	}, fake.registered[0])

	require.Len(t, fake.exercises, 1)
	assert.Equal(t, api.ExerciseInput{Name: "cycling", Duration: 45, CaloriesBurned: 400}, fake.exercises[0])

	for _, pw := range *handed {
		assert.Equal(t, []byte{0, 0}, pw, "password must be wiped")
	}
	assert.Contains(t, out.String(), "Registered ada@example.com (id u1)")
	assert.Contains(t, out.String(), "Logged cycling, 45 min, 400 kcal (id e1)")
	assert.Contains(t, out.String(), "hs(ada@example.com)> ")
	assert.Contains(t, out.String(), "Bye!")
}

func TestApp_LoginNutritionRefreshLogout(t *testing.T) {
	stubPassword(t, "pw")
	fake := &fakeAPI{}
	var out bytes.Buffer

	script := strings.Join([]string{
		"login", "ada@example.com",
		"nutrition", "oats", "breakfast", "350", "12", "60", "6",
		"refresh",
		"logout",
		"help",
	}, "\n") + "\n"

	app := newApp(fake, strings.NewReader(script), &out)
	app.Run(context.Background())

	require.Len(t, fake.logins, 1)
	require.Len(t, fake.meals, 1)
	assert.Equal(t, api.NutritionInput{
		FoodName: "oats", MealType: "breakfast", Calories: 350, Protein: 12, Carbs: 60, Fat: 6,
	}, fake.meals[0])
	assert.Equal(t, 1, fake.refreshes)
	assert.False(t, fake.loggedIn)
	assert.Contains(t, out.String(), "Logged in as Ada")
	assert.Contains(t, out.String(), "Session refreshed")
	assert.Contains(t, out.String(), "Available commands: register, login, exit")
}

func TestApp_InvalidInputIsNotSent(t *testing.T) {
	stubPassword(t, "pw")
	fake := &fakeAPI{}
	var out bytes.Buffer

	script := "register\nnot-an-email\nAda\n\n\n\nexit\n"

	app := newApp(fake, strings.NewReader(script), &out)
	app.Run(context.Background())

	assert.Empty(t, fake.registered)
	assert.Contains(t, out.String(), "Error:")
}

func TestApp_ErrorsAreReported(t *testing.T) {
	stubPassword(t, "pw")
	fake := &fakeAPI{
		pingErr:  client.ErrUnavailable,
		loginErr: &client.APIError{StatusCode: 401, Message: "Invalid credentials"},
	}
	var out bytes.Buffer

	script := "login\nada@example.com\nexercise\nrun\n10\n100\nfrobnicate\n"

	app := newApp(fake, strings.NewReader(script), &out)
	app.Run(context.Background())

	assert.Contains(t, out.String(), "Warning: server is not reachable: server unavailable")
	assert.Contains(t, out.String(), "Error: server returned 401: Invalid credentials")
	assert.Contains(t, out.String(), "Error: not logged in")
	assert.Contains(t, out.String(), "Unknown command: frobnicate")
	assert.Empty(t, fake.exercises)
}

func TestApp_PasswordPromptFailure(t *testing.T) {
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { getPassword = orig })

	fake := &fakeAPI{}
	var out bytes.Buffer
	app := newApp(fake, strings.NewReader("ada@example.com\n"), &out)

	require.EqualError(t, app.Login(context.Background()), "no tty")
	assert.Empty(t, fake.logins)
}

func TestGetStatus(t *testing.T) {
	fake := &fakeAPI{}
	a := newApp(fake, strings.NewReader(""), io.Discard)
	assert.Equal(t, "", a.getStatus())

	a.email = "ada@example.com"
	assert.Equal(t, "", a.getStatus())

	fake.loggedIn = true
	assert.Equal(t, "(ada@example.com)", a.getStatus())
}
