package public

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemForm 加入购物车表单
type AddCartItemForm struct {
	VariantID uint `form:"variantId" json:"variant_id"`
	Quantity  int  `form:"quantity" json:"quantity"`
}

// UpdateCartItemForm 调整数量表单
type UpdateCartItemForm struct {
	CartItemID uint   `form:"cartItemId" json:"cart_item_id"`
	Action     string `form:"action" json:"action"`
}

// RemoveCartItemForm 删除购物车项表单
type RemoveCartItemForm struct {
	CartItemID uint `form:"cartItemId" json:"cart_item_id"`
}

// CartPageResponse 购物车页视图
type CartPageResponse struct {
	*service.CartSnapshot
	Flashes map[string][]string `json:"flashes,omitempty"`
}

// GetCart 购物车页
func (h *Handler) GetCart(c *gin.Context) {
	identity := currentIdentity(c)
	if !identity.Authenticated() {
		c.Redirect(http.StatusFound, constants.PathLogin)
		return
	}
	snapshot, err := h.CartService.Snapshot(c.Request.Context(), identity)
	if err != nil {
		if !service.IsCartMissing(err) {
			respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_fetch_failed")
			return
		}
		snapshot = &service.CartSnapshot{Items: []service.CartSnapshotItem{}}
	}
	resp := CartPageResponse{CartSnapshot: snapshot}
	if h.Sessions != nil {
		resp.Flashes = h.Sessions.Flashes(c)
	}
	response.Success(c, resp)
}

// AddToCart 加入购物车，完成后回到来源页
func (h *Handler) AddToCart(c *gin.Context) {
	identity := currentIdentity(c)
	if !identity.Authenticated() {
		c.Redirect(http.StatusFound, constants.PathLogin)
		return
	}
	target := refererPath(c, constants.PathCart)

	var form AddCartItemForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashErrorAndRedirect(c, http.StatusSeeOther, "error.bad_request", target)
		return
	}
	if _, err := h.CartService.AddItem(c.Request.Context(), identity, form.VariantID, form.Quantity); err != nil {
		key := flashKeyForError(c, err, cartErrorRules, "error.cart_update_failed")
		h.flashErrorAndRedirect(c, http.StatusSeeOther, key, target)
		return
	}
	h.flashSuccessAndRedirect(c, http.StatusSeeOther, "success.cart_added", target)
}

// UpdateCartItem 增减购物车数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	identity := currentIdentity(c)
	if !identity.Authenticated() {
		c.Redirect(http.StatusFound, constants.PathLogin)
		return
	}
	var form UpdateCartItemForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashErrorAndRedirect(c, http.StatusSeeOther, "error.bad_request", constants.PathCart)
		return
	}
	action := strings.ToLower(strings.TrimSpace(form.Action))
	if _, err := h.CartService.UpdateQuantity(c.Request.Context(), identity, form.CartItemID, action); err != nil {
		key := flashKeyForError(c, err, cartErrorRules, "error.cart_update_failed")
		h.flashErrorAndRedirect(c, http.StatusSeeOther, key, constants.PathCart)
		return
	}
	h.flashSuccessAndRedirect(c, http.StatusSeeOther, "success.cart_updated", constants.PathCart)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	identity := currentIdentity(c)
	if !identity.Authenticated() {
		c.Redirect(http.StatusFound, constants.PathLogin)
		return
	}
	var form RemoveCartItemForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashErrorAndRedirect(c, http.StatusSeeOther, "error.bad_request", constants.PathCart)
		return
	}
	if err := h.CartService.RemoveItem(c.Request.Context(), identity, form.CartItemID); err != nil {
		key := flashKeyForError(c, err, cartErrorRules, "error.cart_update_failed")
		h.flashErrorAndRedirect(c, http.StatusSeeOther, key, constants.PathCart)
		return
	}
	h.flashSuccessAndRedirect(c, http.StatusSeeOther, "success.cart_removed", constants.PathCart)
}

// CartCount 购物车角标数量，未登录为 0
func (h *Handler) CartCount(c *gin.Context) {
	count, err := h.CartService.CountItems(c.Request.Context(), currentIdentity(c))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

// refererPath 取站内来源页路径，外站或缺失时回退
func refererPath(c *gin.Context, fallback string) string {
	raw := strings.TrimSpace(c.GetHeader("Referer"))
	if raw == "" {
		return fallback
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fallback
	}
	if parsed.Host != "" && parsed.Host != c.Request.Host {
		return fallback
	}
	path := parsed.EscapedPath()
	if path == "" || !strings.HasPrefix(path, "/") {
		return fallback
	}
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}
	return path
}
