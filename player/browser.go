package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pencuri-cli/pencuri/adblock"
	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/pencuri-cli/pencuri/key"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/pencuri-cli/pencuri/where"
	"github.com/spf13/viper"
)

// Browser opens sources in a visible Chromium-family browser with an unpacked
// ad-filter extension loaded. Every document it opens gets the hardening
// script injected and requests to ad hosts are refused.
type Browser struct {
	Enabled   bool
	Bin       string
	Extension string
	// Profiles holds one user data directory per launched browser.
	Profiles  string
	GOOS      string

	session *rod.Browser
}

// NewBrowserFromConfig reads the tier settings from the configuration.
func NewBrowserFromConfig() *Browser {
	extension := viper.GetString(key.PlayerExtension)
	if extension == "" {
		extension = where.AdFilter()
	}

	return &Browser{
		Enabled:   viper.GetBool(key.PlayerEnhanced),
		Bin:       viper.GetString(key.PlayerBrowser),
		Extension: extension,
		Profiles:  where.Temp(),
		GOOS:      runtime.GOOS,
	}
}

func (b *Browser) Name() string { return "enhanced browser" }

// Available reports whether the platform is a desktop and both the browser and
// the extension can be found.
func (b *Browser) Available() bool {
	if !b.Enabled || b.GOOS == constant.Android {
		return false
	}

	if _, ok := b.bin(); !ok {
		return false
	}

	info, err := filesystem.API().Stat(b.Extension)
	return err == nil && info.IsDir()
}

func (b *Browser) bin() (string, bool) {
	if b.Bin != "" {
		_, err := os.Stat(b.Bin)
		return b.Bin, err == nil
	}
	return launcher.LookPath()
}

// Launch opens the source in a new tab, starting a detached browser first
// if none is running. Playback outlives the session.
func (b *Browser) Launch(_ context.Context, link string) error {
	if b.session != nil {
		err := b.open(link)
		if err == nil {
			return nil
		}
		log.Warnf("player: browser session lost, relaunching: %s", err)
		b.session = nil
	}

	if err := b.start(); err != nil {
		return err
	}
	return b.open(link)
}

func (b *Browser) start() error {
	bin, ok := b.bin()
	if !ok {
		return errors.New("browser not found")
	}

	profileMu.Lock()
	defer profileMu.Unlock()

	profile, err := newProfile(b.Profiles)
	if err != nil {
		return fmt.Errorf("browser profile: %w", err)
	}

	control, err := launcher.New().
		Bin(bin).
		Headless(false).
		Leakless(false).
		UserDataDir(profile).
		Set("load-extension", b.Extension).
		Set("disable-extensions-except", b.Extension).
		Delete("enable-automation").
		Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(control)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect browser: %w", err)
	}

	router := browser.HijackRequests()
	if err := router.Add("*", "", blockAds); err != nil {
		return fmt.Errorf("install request filter: %w", err)
	}
	go router.Run()

	log.Infof("player: started %s", bin)
	b.session = browser
	return nil
}

func (b *Browser) open(link string) error {
	page, err := b.session.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("open tab: %w", err)
	}

	if _, err := page.EvalOnNewDocument(adblock.Script()); err != nil {
		log.Warnf("player: page hardening not installed: %s", err)
	}

	if err := page.Navigate(link); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}

	log.Infof("player: %s opened", link)
	return nil
}

func blockAds(h *rod.Hijack) {
	if adblock.IsAdHost(h.Request.URL().Hostname()) {
		log.Debugf("player: blocked %s", h.Request.URL().Host)
		h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
		return
	}
	h.ContinueRequest(&proto.FetchContinueRequest{})
}
