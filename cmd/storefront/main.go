// Command storefront walks the guest-to-account flow against a running
// commerce-stub: accumulate a guest cart, log in, reconcile, mutate the
// account cart and log out again.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/commerce"
	"storefront/internal/infra/localstore"
	logs "storefront/internal/infra/log"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		fx.Invoke(runDemo),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		localstore.New,
		newGuestStore,
		auth.NewTokenHolder,
		newTokenSource,
		commerce.New,
		newCartAPI,
		newWishlistAPI,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGuestCartService,
			impl.NewGuestWishlistService,
			impl.NewReconcileService,
			impl.NewSessionService,
			auth.New,
		),
	)
}

func newGuestStore(store *localstore.Store) repository.GuestStore {
	return store
}

func newTokenSource(holder *auth.TokenHolder) service.TokenSource {
	return holder
}

func newCartAPI(client *commerce.Client) service.CartAPI {
	return client
}

func newWishlistAPI(client *commerce.Client) service.WishlistAPI {
	return client
}

type demoParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Session    usecase.SessionUsecase
	Watcher    *auth.Watcher
	Tokens     *auth.TokenHolder
	Shutdowner fx.Shutdowner
}

func runDemo(params demoParams) {
	go func() {
		if err := demo(context.Background(), params); err != nil {
			params.Logger.Error("demo failed", slog.Any("error", err))
		}
		_ = params.Shutdowner.Shutdown()
	}()
}

func demo(ctx context.Context, params demoParams) error {
	logger := params.Logger
	session := params.Session

	// Browse as a guest. Everything lands in the encoded local store.
	if err := session.AddToCart(ctx, usecase.AddToCartInput{ProductID: 1, Quantity: 2, SelectedSize: "42"}); err != nil {
		return err
	}
	if err := session.AddToCart(ctx, usecase.AddToCartInput{ProductID: 2, Quantity: 1}); err != nil {
		return err
	}
	if err := session.AddToWishlist(ctx, 3); err != nil {
		return err
	}
	logger.Info("guest session ready",
		slog.Int("cartItems", session.CartItemCount(ctx)),
		slog.Int("wishlistItems", session.WishlistItemCount(ctx)))

	// Log in against the stub and let the watcher reconcile.
	token, err := login(ctx, params.Config.API.BaseURL, "demo-user")
	if err != nil {
		return errors.Wrap(err, "login against commerce stub")
	}
	params.Tokens.Set(token)

	outcome, err := params.Watcher.Sync(ctx)
	if err != nil {
		return errors.Wrap(err, "reconcile after login")
	}
	if outcome != nil {
		logger.Info("cart merged",
			slog.Bool("success", outcome.Cart.Success),
			slog.Int("synced", outcome.Cart.SyncedCount),
			slog.Int("failed", outcome.Cart.FailedCount))
		logger.Info("wishlist merged",
			slog.Bool("success", outcome.Wishlist.Success),
			slog.Int("synced", outcome.Wishlist.SyncedCount),
			slog.Int("failed", outcome.Wishlist.FailedCount))
	}

	view := session.Cart()
	for _, item := range view.Items {
		logger.Info("account cart line",
			slog.Int64("itemId", item.ID),
			slog.String("product", item.Product.Name),
			slog.Int("quantity", item.Quantity),
			slog.Float64("totalPrice", item.TotalPrice))
	}

	// Mutate the account cart; the view updates optimistically.
	if len(view.Items) > 0 {
		ref := usecase.LineRef{ItemID: view.Items[0].ID}
		if err := session.UpdateQuantity(ctx, ref, view.Items[0].Quantity+1); err != nil {
			return errors.Wrap(err, "update quantity")
		}
		logger.Info("quantity bumped", slog.Int("cartItems", session.CartItemCount(ctx)))
	}

	// Log out. The next sync routes the session back at the local store.
	params.Tokens.Set("")
	if _, err := params.Watcher.Sync(ctx); err != nil {
		return errors.Wrap(err, "revert to guest")
	}
	logger.Info("logged out",
		slog.Bool("guest", session.Cart().Guest),
		slog.Int("cartItems", session.CartItemCount(ctx)))

	return nil
}

// login mints an access token through the stub's development login endpoint.
func login(ctx context.Context, baseURL, subject string) (string, error) {
	payload, err := json.Marshal(map[string]string{"subject": subject})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("login answered %s", resp.Status)
	}

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", errors.New("login response carried no token")
	}

	return body.AccessToken, nil
}
