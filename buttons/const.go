package buttons

const (
	BTN_SIZE = 192
	IMG_SIZE = (BTN_SIZE / 4) * 3

	LEAD_INFO_OFFSET = 10
	PRESSED_OPACITY  = 0.6
)
