package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4
#include <webkit/webkit.h>

static GtkWidget* twich_web_view_new(WebKitNetworkSession* session) {
    return GTK_WIDGET(g_object_new(WEBKIT_TYPE_WEB_VIEW,
        "network-session", session,
        NULL));
}
*/
import "C"

import (
	"unsafe"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
)

// newSessionWebView builds a view bound to session. network-session is a
// construct-only property so it cannot be set after webkit.NewWebView.
func newSessionWebView(session *webkit.NetworkSession) *webkit.WebView {
	native := (*C.WebKitNetworkSession)(unsafe.Pointer(coreglib.InternObject(session).Native()))
	ptr := C.twich_web_view_new(native)
	if ptr == nil {
		return nil
	}
	view, ok := coreglib.Take(unsafe.Pointer(ptr)).Cast().(*webkit.WebView)
	if !ok {
		return nil
	}
	return view
}
