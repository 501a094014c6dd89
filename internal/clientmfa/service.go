package clientmfa

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bhardwajRahul/defguard/internal/activity"
	"github.com/bhardwajRahul/defguard/internal/authz"
	devicerepo "github.com/bhardwajRahul/defguard/internal/device/repository"
	"github.com/bhardwajRahul/defguard/internal/gateway"
	locationrepo "github.com/bhardwajRahul/defguard/internal/location/repository"
	"github.com/bhardwajRahul/defguard/internal/mail"
	"github.com/bhardwajRahul/defguard/internal/mfa"
	netdevdomain "github.com/bhardwajRahul/defguard/internal/netdev/domain"
	netdevrepo "github.com/bhardwajRahul/defguard/internal/netdev/repository"
	"github.com/bhardwajRahul/defguard/internal/security"
	userdomain "github.com/bhardwajRahul/defguard/internal/user/domain"
	userrepo "github.com/bhardwajRahul/defguard/internal/user/repository"
	"github.com/bhardwajRahul/defguard/internal/wireguard"
)

// Service errors mapped to gRPC codes by the handler. Anything else is an
// internal failure.
var (
	ErrLocationNotFound = errors.New("location not found")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrMethodDisabled   = errors.New("MFA method not enabled")
	ErrSessionNotFound  = errors.New("login session not found")
	ErrInvalidCode      = errors.New("invalid code")
)

const emailCodeSubject = "Your VPN login code"

// ClientInfo is the request metadata recorded in activity events. Device
// is the human-readable rendering of the client's user agent.
type ClientInfo struct {
	IP     string
	Device string
}

// Service orchestrates desktop-client MFA logins.
type Service struct {
	users     userrepo.Repository
	locations locationrepo.Repository
	devices   devicerepo.Repository
	netdevs   netdevrepo.Repository
	tokens    *security.TokenProvider
	gateway   gateway.Notifier
	activity  activity.Notifier
	mailQueue *mail.Queue
	sessions  *SessionStore
	tokenTTL  time.Duration
	log       *zap.Logger
	nowF      func() time.Time
}

func NewService(
	users userrepo.Repository,
	locations locationrepo.Repository,
	devices devicerepo.Repository,
	netdevs netdevrepo.Repository,
	tokens *security.TokenProvider,
	gatewayNotifier gateway.Notifier,
	activityNotifier activity.Notifier,
	mailQueue *mail.Queue,
	sessions *SessionStore,
	tokenTTL time.Duration,
	log *zap.Logger,
) *Service {
	return &Service{
		users:     users,
		locations: locations,
		devices:   devices,
		netdevs:   netdevs,
		tokens:    tokens,
		gateway:   gatewayNotifier,
		activity:  activityNotifier,
		mailQueue: mailQueue,
		sessions:  sessions,
		tokenTTL:  tokenTTL,
		log:       log,
		nowF:      func() time.Time { return time.Now().UTC() },
	}
}

// StartLogin validates the device, location and user, dispatches the email
// code when that method is chosen, and returns a login token. The stored
// session replaces any previous one for the same public key.
func (s *Service) StartLogin(ctx context.Context, pubkey string, locationID int64, methodName string) (string, error) {
	method, err := mfa.ParseMethod(methodName)
	if err != nil {
		return "", err
	}

	location, err := s.locations.GetByID(ctx, locationID)
	if err != nil {
		return "", fmt.Errorf("resolve location: %w", err)
	}
	if location == nil {
		return "", ErrLocationNotFound
	}

	device, err := s.devices.GetByPublicKey(ctx, pubkey)
	if err != nil {
		return "", fmt.Errorf("resolve device: %w", err)
	}
	if device == nil {
		return "", ErrDeviceNotFound
	}

	user, err := s.users.GetByID(ctx, device.UserID)
	if err != nil {
		return "", fmt.Errorf("resolve user: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if !user.IsActive {
		return "", ErrAccessDenied
	}

	allowedGroups, err := s.locations.GetAllowedGroups(ctx, locationID)
	if err != nil {
		return "", fmt.Errorf("resolve allowed groups: %w", err)
	}
	if len(allowedGroups) > 0 {
		userGroups, err := s.users.GetGroups(ctx, user.ID)
		if err != nil {
			return "", fmt.Errorf("resolve user groups: %w", err)
		}
		if !authz.GroupsAllowed(allowedGroups, userGroups) {
			return "", ErrAccessDenied
		}
	}

	if err := user.VerifyMFAState(); err != nil {
		return "", fmt.Errorf("user %d: %w", user.ID, err)
	}
	if !method.EnabledFor(user) {
		return "", ErrMethodDisabled
	}

	if method == mfa.MethodEmail {
		if err := s.dispatchEmailCode(user); err != nil {
			return "", err
		}
	}

	token, expiresAt, err := s.tokens.IssueLogin(pubkey, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.sessions.Put(pubkey, &LoginSession{
		Method:    method,
		Location:  location,
		Device:    device,
		User:      user,
		ExpiresAt: expiresAt,
	})
	s.log.Info("clientmfa: login started",
		zap.String("username", user.Username),
		zap.Int64("location_id", location.ID),
		zap.String("method", method.String()))
	return token, nil
}

// dispatchEmailCode derives the current code from the user's email MFA
// secret and enqueues one message. An unavailable mail queue fails the
// whole start; the user would wait for a code that never arrives.
func (s *Service) dispatchEmailCode(user *userdomain.User) error {
	code, err := mfa.GenerateEmailCode(user.EmailMFASecret, s.nowF())
	if err != nil {
		return fmt.Errorf("generate email code: %w", err)
	}
	err = s.mailQueue.Enqueue(&mail.Mail{
		To:      user.Email,
		Subject: emailCodeSubject,
		Content: fmt.Sprintf("Use this code to sign in to the VPN: %s\r\nThe code expires in 5 minutes.", code),
	})
	if err != nil {
		return fmt.Errorf("enqueue email code: %w", err)
	}
	return nil
}

// FinishLogin verifies the token and code, authorizes the device for the
// location with a fresh preshared key, and notifies the gateways once the
// change is durable. On a wrong code the session survives for a retry.
func (s *Service) FinishLogin(ctx context.Context, token, code string, client ClientInfo) (string, error) {
	pubkey, err := s.tokens.VerifyLogin(token)
	if err != nil {
		return "", err
	}

	session, ok := s.sessions.Get(pubkey)
	if !ok {
		return "", ErrSessionNotFound
	}
	now := s.nowF()

	if !session.Method.Verify(session.User, code, now) {
		event := s.newEvent(session, client, now, activity.KindLoginFailed)
		if err := s.activity.Notify(ctx, event); err != nil {
			return "", fmt.Errorf("notify login failure: %w", err)
		}
		s.log.Info("clientmfa: invalid code",
			zap.String("username", session.User.Username),
			zap.Int64("location_id", session.Location.ID))
		return "", ErrInvalidCode
	}

	nd, err := s.authorizeDevice(ctx, session, now)
	if err != nil {
		return "", err
	}

	update := &gateway.PeerUpdate{
		LocationID:   session.Location.ID,
		DeviceID:     session.Device.ID,
		PublicKey:    session.Device.PublicKey,
		PresharedKey: nd.PresharedKey,
		WireguardIPs: nd.WireguardIPs,
	}
	if err := s.gateway.NotifyPeerUpdate(ctx, update); err != nil {
		return "", fmt.Errorf("notify gateway: %w", err)
	}
	if err := s.activity.Notify(ctx, s.newEvent(session, client, now, activity.KindConnected)); err != nil {
		return "", fmt.Errorf("notify connection: %w", err)
	}

	s.sessions.Delete(pubkey)
	s.log.Info("clientmfa: login finished",
		zap.String("username", session.User.Username),
		zap.Int64("location_id", session.Location.ID))
	return nd.PresharedKey, nil
}

// authorizeDevice runs the storage transaction: lock the row, set the new
// key, mark authorized, commit. Notifications happen only after the commit
// returns.
func (s *Service) authorizeDevice(ctx context.Context, session *LoginSession, now time.Time) (*netdevdomain.NetworkDevice, error) {
	tx, err := s.netdevs.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin authorization: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	nd, err := s.netdevs.GetForUpdate(ctx, tx, session.Device.ID, session.Location.ID)
	if err != nil {
		return nil, fmt.Errorf("read network device: %w", err)
	}
	if nd == nil {
		return nil, fmt.Errorf("device %d has no network config for location %d", session.Device.ID, session.Location.ID)
	}

	psk, err := wireguard.GeneratePresharedKey()
	if err != nil {
		return nil, fmt.Errorf("generate preshared key: %w", err)
	}
	nd.Authorize(psk, now)
	if err := s.netdevs.Update(ctx, tx, nd); err != nil {
		return nil, fmt.Errorf("write network device: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit authorization: %w", err)
	}
	committed = true
	return nd, nil
}

func (s *Service) newEvent(session *LoginSession, client ClientInfo, now time.Time, kind string) *activity.Event {
	return activity.NewEvent(activity.Context{
		Timestamp: now,
		UserID:    session.User.ID,
		Username:  session.User.Username,
		IP:        client.IP,
		Device:    client.Device,
	}, activity.ModuleDesktopClientMFA, kind, map[string]string{
		"location": session.Location.Name,
		"device":   session.Device.Name,
		"method":   session.Method.String(),
	})
}
