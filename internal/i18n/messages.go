package i18n

var messages = map[string]map[string]string{
	LocaleVI: {
		"success":                         "Thành công",
		"success.order_created":           "Đặt hàng thành công!",
		"success.order_cancelled":         "Đã hủy đơn hàng",
		"success.refund_requested":        "Đã gửi yêu cầu hoàn tiền",
		"success.cart_added":              "Đã thêm vào giỏ hàng",
		"success.cart_updated":            "Đã cập nhật giỏ hàng",
		"success.cart_removed":            "Đã xóa sản phẩm khỏi giỏ hàng",
		"success.register":                "Đăng ký thành công, vui lòng kiểm tra email để lấy mã xác thực",
		"success.verified":                "Xác thực email thành công, bạn có thể đăng nhập",
		"success.code_sent":               "Đã gửi mã xác thực",
		"success.login":                   "Đăng nhập thành công",
		"success.logout":                  "Đã đăng xuất",
		"success.password_reset":          "Đặt lại mật khẩu thành công",
		"success.profile_updated":         "Đã cập nhật thông tin",
		"success.address_saved":           "Đã lưu địa chỉ",
		"success.address_deleted":         "Đã xóa địa chỉ",
		"success.review_submitted":        "Cảm ơn bạn đã đánh giá",
		"error.bad_request":               "Yêu cầu không hợp lệ",
		"error.unauthorized":              "Vui lòng đăng nhập",
		"error.forbidden":                 "Bạn không có quyền thực hiện thao tác này",
		"error.not_found":                 "Không tìm thấy dữ liệu",
		"error.internal":                  "Lỗi hệ thống, vui lòng thử lại sau",
		"error.too_many_requests":         "Bạn thao tác quá nhanh, vui lòng thử lại sau",
		"error.login_required":            "Vui lòng đăng nhập để tiếp tục",
		"error.empty_cart":                "Giỏ hàng trống",
		"error.invalid_quantity":          "Số lượng không hợp lệ",
		"error.variant_required":          "Vui lòng chọn size và màu",
		"error.variant_not_found":         "Không tìm thấy sản phẩm",
		"error.shoes_not_found":           "Không tìm thấy sản phẩm",
		"error.category_not_found":        "Không tìm thấy danh mục",
		"error.cart_item_not_found":       "Không tìm thấy sản phẩm trong giỏ hàng",
		"error.address_not_found":         "Không tìm thấy địa chỉ",
		"error.order_not_found":           "Không tìm thấy đơn hàng",
		"error.stock_exceeded":            "Số lượng vượt quá tồn kho",
		"error.insufficient_stock":        "Tồn kho không đủ",
		"error.invalid_transition":        "Không thể chuyển trạng thái đơn hàng",
		"error.business_rule":             "Yêu cầu không hợp lệ",
		"error.order_type_invalid":        "Loại đơn hàng không hợp lệ",
		"error.recipient_required":        "Vui lòng nhập đầy đủ thông tin người nhận",
		"error.payment_method_invalid":    "Phương thức thanh toán không hợp lệ",
		"error.order_create_failed":       "Đặt hàng thất bại",
		"error.order_fetch_failed":        "Không thể tải đơn hàng",
		"error.order_update_failed":       "Không thể cập nhật đơn hàng",
		"error.cart_fetch_failed":         "Không thể tải giỏ hàng",
		"error.cart_update_failed":        "Không thể cập nhật giỏ hàng",
		"error.shoes_fetch_failed":        "Không thể tải sản phẩm",
		"error.save_failed":               "Lưu thất bại",
		"error.delete_failed":             "Xóa thất bại",
		"error.email_invalid":             "Email không hợp lệ",
		"error.email_exists":              "Email đã được sử dụng",
		"error.invalid_credentials":       "Email hoặc mật khẩu không đúng",
		"error.user_disabled":             "Tài khoản đã bị khóa",
		"error.email_not_verified":        "Tài khoản chưa được xác thực email",
		"error.user_not_found":            "Không tìm thấy tài khoản",
		"error.verify_code_invalid":       "Mã xác thực không đúng",
		"error.verify_code_expired":       "Mã xác thực đã hết hạn",
		"error.verify_code_attempts":      "Nhập sai quá nhiều lần, vui lòng lấy mã mới",
		"error.already_verified":          "Tài khoản đã được xác thực",
		"error.weak_password":             "Mật khẩu không đủ mạnh",
		"error.password_min_length":       "Mật khẩu phải có ít nhất %d ký tự",
		"error.password_require_upper":    "Mật khẩu phải có chữ in hoa",
		"error.password_require_lower":    "Mật khẩu phải có chữ thường",
		"error.password_require_number":   "Mật khẩu phải có chữ số",
		"error.password_require_special":  "Mật khẩu phải có ký tự đặc biệt",
		"error.password_max_length":       "Mật khẩu không được dài quá %d byte",
		"error.password_contains_account": "Mật khẩu không được chứa tên tài khoản hoặc email",
		"error.review_exists":             "Sản phẩm này đã được đánh giá",
		"error.review_not_allowed":        "Chỉ có thể đánh giá đơn hàng đã hoàn thành",
		"error.rating_invalid":            "Điểm đánh giá phải từ 1 đến 5",
		"error.campaign_not_found":        "Không tìm thấy chiến dịch",
		"error.voucher_not_found":         "Không tìm thấy voucher",
		"error.voucher_code_exists":       "Mã voucher đã tồn tại",
		"error.campaign_has_vouchers":     "Chiến dịch có voucher, không thể xóa",
		"error.voucher_in_use":            "Voucher đã được sử dụng, không thể xóa",
		"error.date_range_invalid":        "Ngày kết thúc phải >= ngày bắt đầu",
		"error.discount_type_invalid":     "Loại giảm giá không hợp lệ",
		"error.inventory_type_invalid":    "Loại cập nhật kho không hợp lệ",
		"error.admin_not_found":           "Không tìm thấy quản trị viên",
		"error.token_invalid":             "Phiên đăng nhập không hợp lệ",
		"error.token_expired":             "Phiên đăng nhập đã hết hạn",
		"error.authz_unavailable":         "Dịch vụ phân quyền không khả dụng",
		"error.admin_id_invalid":          "Mã quản trị viên không hợp lệ",
		"error.admin_id_type_invalid":     "Kiểu mã quản trị viên không hợp lệ",
		"error.admin_login_invalid":       "Tên đăng nhập hoặc mật khẩu không đúng",
		"error.auth_header_invalid":       "Header xác thực không hợp lệ",
		"error.auth_header_missing":       "Thiếu header xác thực",
		"error.authz_fetch_failed":        "Không thể tải dữ liệu phân quyền",
		"error.campaign_name_required":    "Vui lòng nhập tên chiến dịch",
		"error.category_fetch_failed":     "Không thể tải danh mục",
		"error.category_name_exists":      "Tên danh mục đã tồn tại",
		"error.dashboard_fetch_failed":    "Không thể tải số liệu tổng quan",
		"error.discount_value_invalid":    "Giá trị giảm giá không hợp lệ",
		"error.invalid_date_range":        "Khoảng thời gian không hợp lệ",
		"error.inventory_fetch_failed":    "Không thể tải tồn kho",
		"error.inventory_update_failed":   "Không thể cập nhật tồn kho",
		"error.jwt_secret_missing":        "Chưa cấu hình khóa ký phiên đăng nhập",
		"error.login_failed":              "Đăng nhập thất bại",
		"error.login_too_many":            "Đăng nhập sai quá nhiều lần, vui lòng thử lại sau %d giây",
		"error.order_status_invalid":      "Trạng thái đơn hàng không hợp lệ",
		"error.password_old_invalid":      "Mật khẩu cũ không đúng",
		"error.promotion_fetch_failed":    "Không thể tải chương trình khuyến mãi",
		"error.promotion_target_invalid":  "Đối tượng áp dụng khuyến mãi không hợp lệ",
		"error.rate_limit_unavailable":    "Dịch vụ giới hạn truy cập không khả dụng",
		"error.rate_limited":              "Bạn thao tác quá nhanh, vui lòng thử lại sau %d giây",
		"error.shoes_name_required":       "Vui lòng nhập tên sản phẩm",
		"error.shoes_price_invalid":       "Giá sản phẩm không hợp lệ",
		"error.shoes_type_invalid":        "Loại sản phẩm không hợp lệ",
		"error.token_revoked":             "Phiên đăng nhập đã bị thu hồi, vui lòng đăng nhập lại",
		"error.user_fetch_failed":         "Không thể tải danh sách khách hàng",
		"error.user_status_invalid":       "Trạng thái tài khoản không hợp lệ",
		"error.voucher_code_required":     "Vui lòng nhập mã voucher",
		"email.verify.subject_register":   "Mã xác thực đăng ký tài khoản",
		"email.verify.subject_reset":      "Mã đặt lại mật khẩu",
		"email.verify.body":               "Mã xác thực của bạn là: %s\n\nMã có hiệu lực trong %d giây. Vui lòng không chia sẻ mã này.",
		"email.order_created.subject":     "Xác nhận đơn hàng %s",
		"email.order_created.body":        "Cảm ơn bạn đã đặt hàng!\n\nMã đơn hàng: %s\nTổng thanh toán: %s\nGiao đến: %s\n\nChúng tôi sẽ thông báo khi đơn hàng được xử lý.",
		"email.order_status.subject":      "Đơn hàng %s: %s",
		"email.order_status.body":         "Đơn hàng %s đã chuyển từ \"%s\" sang \"%s\".",
		"order.status.pending":            "Chờ xác nhận",
		"order.status.confirmed":          "Đã xác nhận",
		"order.status.packing":            "Đang đóng gói",
		"order.status.shipping":           "Đang giao hàng",
		"order.status.completed":          "Hoàn thành",
		"order.status.cancelled":          "Đã hủy",
		"order.status.request_refund":     "Yêu cầu hoàn tiền",
		"order.status.refunded":           "Đã hoàn tiền",
	},
	LocaleEN: {
		"success":                         "Success",
		"success.order_created":           "Order placed successfully!",
		"success.order_cancelled":         "Order cancelled",
		"success.refund_requested":        "Refund requested",
		"success.cart_added":              "Added to cart",
		"success.cart_updated":            "Cart updated",
		"success.cart_removed":            "Item removed from cart",
		"success.register":                "Registered, check your email for the verification code",
		"success.verified":                "Email verified, you can sign in now",
		"success.code_sent":               "Verification code sent",
		"success.login":                   "Signed in",
		"success.logout":                  "Signed out",
		"success.password_reset":          "Password reset",
		"success.profile_updated":         "Profile updated",
		"success.address_saved":           "Address saved",
		"success.address_deleted":         "Address deleted",
		"success.review_submitted":        "Thanks for your review",
		"error.bad_request":               "Invalid request",
		"error.unauthorized":              "Please sign in",
		"error.forbidden":                 "You are not allowed to do this",
		"error.not_found":                 "Not found",
		"error.internal":                  "Internal error, please try again later",
		"error.too_many_requests":         "Too many requests, please try again later",
		"error.login_required":            "Please sign in to continue",
		"error.empty_cart":                "Your cart is empty",
		"error.invalid_quantity":          "Invalid quantity",
		"error.variant_required":          "Please choose a size and color",
		"error.variant_not_found":         "Product not found",
		"error.shoes_not_found":           "Product not found",
		"error.category_not_found":        "Category not found",
		"error.cart_item_not_found":       "Cart item not found",
		"error.address_not_found":         "Address not found",
		"error.order_not_found":           "Order not found",
		"error.stock_exceeded":            "Quantity exceeds available stock",
		"error.insufficient_stock":        "Insufficient stock",
		"error.invalid_transition":        "Order status cannot be changed",
		"error.business_rule":             "Request not allowed",
		"error.order_type_invalid":        "Invalid order type",
		"error.recipient_required":        "Recipient name, phone and address are required",
		"error.payment_method_invalid":    "Invalid payment method",
		"error.order_create_failed":       "Failed to place order",
		"error.order_fetch_failed":        "Failed to load order",
		"error.order_update_failed":       "Failed to update order",
		"error.cart_fetch_failed":         "Failed to load cart",
		"error.cart_update_failed":        "Failed to update cart",
		"error.shoes_fetch_failed":        "Failed to load products",
		"error.save_failed":               "Save failed",
		"error.delete_failed":             "Delete failed",
		"error.email_invalid":             "Invalid email",
		"error.email_exists":              "Email already registered",
		"error.invalid_credentials":       "Wrong email or password",
		"error.user_disabled":             "Account disabled",
		"error.email_not_verified":        "Email not verified",
		"error.user_not_found":            "Account not found",
		"error.verify_code_invalid":       "Invalid verification code",
		"error.verify_code_expired":       "Verification code expired",
		"error.verify_code_attempts":      "Too many wrong attempts, request a new code",
		"error.already_verified":          "Account already verified",
		"error.weak_password":             "Password is too weak",
		"error.password_min_length":       "Password must be at least %d characters",
		"error.password_require_upper":    "Password must contain an uppercase letter",
		"error.password_require_lower":    "Password must contain a lowercase letter",
		"error.password_require_number":   "Password must contain a digit",
		"error.password_require_special":  "Password must contain a special character",
		"error.password_max_length":       "Password must be at most %d bytes",
		"error.password_contains_account": "Password must not contain your account name or email",
		"error.review_exists":             "This item has already been reviewed",
		"error.review_not_allowed":        "Only completed orders can be reviewed",
		"error.rating_invalid":            "Rating must be between 1 and 5",
		"error.campaign_not_found":        "Campaign not found",
		"error.voucher_not_found":         "Voucher not found",
		"error.voucher_code_exists":       "Voucher code already exists",
		"error.campaign_has_vouchers":     "Campaign has vouchers and cannot be deleted",
		"error.voucher_in_use":            "Voucher has been used and cannot be deleted",
		"error.date_range_invalid":        "End date must not be before start date",
		"error.discount_type_invalid":     "Invalid discount type",
		"error.inventory_type_invalid":    "Invalid stock update type",
		"error.admin_not_found":           "Admin not found",
		"error.token_invalid":             "Invalid session token",
		"error.token_expired":             "Session token expired",
		"error.authz_unavailable":         "Authorization service unavailable",
		"error.admin_id_invalid":          "Invalid admin id",
		"error.admin_id_type_invalid":     "Invalid admin id type",
		"error.admin_login_invalid":       "Wrong username or password",
		"error.auth_header_invalid":       "Invalid authorization header",
		"error.auth_header_missing":       "Missing authorization header",
		"error.authz_fetch_failed":        "Failed to load permissions",
		"error.campaign_name_required":    "Campaign name is required",
		"error.category_fetch_failed":     "Failed to load categories",
		"error.category_name_exists":      "Category name already exists",
		"error.dashboard_fetch_failed":    "Failed to load dashboard",
		"error.discount_value_invalid":    "Invalid discount value",
		"error.invalid_date_range":        "Invalid date range",
		"error.inventory_fetch_failed":    "Failed to load inventory",
		"error.inventory_update_failed":   "Failed to update inventory",
		"error.jwt_secret_missing":        "Session signing key is not configured",
		"error.login_failed":              "Sign in failed",
		"error.login_too_many":            "Too many failed sign-ins, try again in %d seconds",
		"error.order_status_invalid":      "Invalid order status",
		"error.password_old_invalid":      "Old password is wrong",
		"error.promotion_fetch_failed":    "Failed to load promotions",
		"error.promotion_target_invalid":  "Invalid promotion target",
		"error.rate_limit_unavailable":    "Rate limiting is unavailable",
		"error.rate_limited":              "Too many requests, try again in %d seconds",
		"error.shoes_name_required":       "Product name is required",
		"error.shoes_price_invalid":       "Invalid product price",
		"error.shoes_type_invalid":        "Invalid product type",
		"error.token_revoked":             "Session revoked, please sign in again",
		"error.user_fetch_failed":         "Failed to load customers",
		"error.user_status_invalid":       "Invalid account status",
		"error.voucher_code_required":     "Voucher code is required",
		"email.verify.subject_register":   "Your registration code",
		"email.verify.subject_reset":      "Your password reset code",
		"email.verify.body":               "Your verification code is: %s\n\nIt is valid for %d seconds. Do not share it.",
		"email.order_created.subject":     "Order confirmation %s",
		"email.order_created.body":        "Thank you for your order!\n\nOrder No: %s\nTotal: %s\nShip to: %s\n\nWe will let you know when the order is processed.",
		"email.order_status.subject":      "Order %s: %s",
		"email.order_status.body":         "Order %s moved from \"%s\" to \"%s\".",
		"order.status.pending":            "Pending",
		"order.status.confirmed":          "Confirmed",
		"order.status.packing":            "Packing",
		"order.status.shipping":           "Shipping",
		"order.status.completed":          "Completed",
		"order.status.cancelled":          "Cancelled",
		"order.status.request_refund":     "Refund requested",
		"order.status.refunded":           "Refunded",
	},
}
