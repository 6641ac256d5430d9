package arm64

// This file contains AArch64 instruction encoders used by the code
// generator. Each function returns the 32-bit instruction word for one
// mnemonic. Register operands are plain integers 0-31 (31 means SP in
// load/store/arithmetic base position, or the zero register XZR/WZR in
// most other operand positions — AArch64 overloads register 31 by
// context, same as the ISA itself).
//
// Bit layouts follow the standard AArch64 encodings (ARM DDI 0487).

// AddImm64 encodes: add Xd, Xn, #imm12 (unshifted).
func AddImm64(rd, rn uint32, imm12 uint32) Word {
	return 0x91000000 | (imm12&0xfff)<<10 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// SubImm64 encodes: sub Xd, Xn, #imm12 (unshifted).
func SubImm64(rd, rn uint32, imm12 uint32) Word {
	return 0xD1000000 | (imm12&0xfff)<<10 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// AddsImm64 encodes: adds Xd, Xn, #imm12 — add, flag-setting.
func AddsImm64(rd, rn uint32, imm12 uint32) Word {
	return 0xB1000000 | (imm12&0xfff)<<10 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// SubsImm64 encodes: subs Xd, Xn, #imm12 — subtract, flag-setting.
func SubsImm64(rd, rn uint32, imm12 uint32) Word {
	return 0xF1000000 | (imm12&0xfff)<<10 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// AddImm32 encodes: add Wd, Wn, #imm12 (unshifted, 32-bit).
func AddImm32(rd, rn uint32, imm12 uint32) Word {
	return 0x11000000 | (imm12&0xfff)<<10 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// SubsImm32 encodes: subs Wd, Wn, #imm12 — used as the 32-bit "cmp #imm"
// idiom when Wd is the zero register.
func SubsImm32(rd, rn uint32, imm12 uint32) Word {
	return 0x71000000 | (imm12&0xfff)<<10 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// AddReg64 encodes: add Xd, Xn, Xm (no shift).
func AddReg64(rd, rn, rm uint32) Word {
	return 0x8B000000 | (rm&0x1f)<<16 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// SubsReg64 encodes: subs Xd, Xn, Xm — subtract, flag-setting (also the
// "cmp" idiom when Xd is XZR).
func SubsReg64(rd, rn, rm uint32) Word {
	return 0xEB000000 | (rm&0x1f)<<16 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// AddReg32 encodes: add Wd, Wn, Wm (no shift).
func AddReg32(rd, rn, rm uint32) Word {
	return 0x0B000000 | (rm&0x1f)<<16 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// MovzImm64 encodes: movz Xd, #imm16 (hw shift 0).
func MovzImm64(rd uint32, imm16 uint32) Word {
	return 0xD2800000 | (imm16&0xffff)<<5 | (rd & 0x1f)
}

// MovzImm32 encodes: movz Wd, #imm16 (hw shift 0).
func MovzImm32(rd uint32, imm16 uint32) Word {
	return 0x52800000 | (imm16&0xffff)<<5 | (rd & 0x1f)
}

// MovReg64 encodes: mov Xd, Xm (the "orr Xd, XZR, Xm" alias).
func MovReg64(rd, rm uint32) Word {
	return 0xAA0003E0 | (rm&0x1f)<<16 | (rd & 0x1f)
}

// CselReg64 encodes: csel Xd, Xn, Xm, cond.
func CselReg64(rd, rn, rm uint32, cond Cond) Word {
	return 0x9A800000 | (rm&0x1f)<<16 | (uint32(cond)&0xf)<<12 | (rn&0x1f)<<5 | (rd & 0x1f)
}

// LdrbRegOffset encodes: ldrb Wt, [Xn, Xm] — unsigned byte load, register
// offset, no extend/shift.
func LdrbRegOffset(rt, rn, rm uint32) Word {
	return 0x38606800 | (rm&0x1f)<<16 | (rn&0x1f)<<5 | (rt & 0x1f)
}

// StrbRegOffset encodes: strb Wt, [Xn, Xm] — unsigned byte store, register
// offset, no extend/shift.
func StrbRegOffset(rt, rn, rm uint32) Word {
	return 0x38206800 | (rm&0x1f)<<16 | (rn&0x1f)<<5 | (rt & 0x1f)
}

// Stp64 encodes: stp Xt1, Xt2, [Xn] — signed offset form, offset 0.
func Stp64(rt1, rt2, rn uint32) Word {
	return 0xA9000000 | (rt2&0x1f)<<10 | (rn&0x1f)<<5 | (rt1 & 0x1f)
}

// Ldp64 encodes: ldp Xt1, Xt2, [Xn] — signed offset form, offset 0.
func Ldp64(rt1, rt2, rn uint32) Word {
	return 0xA9400000 | (rt2&0x1f)<<10 | (rn&0x1f)<<5 | (rt1 & 0x1f)
}

// Ret encodes: ret Xn (defaults to X30/LR when rn == 30).
func Ret(rn uint32) Word {
	return 0xD65F0000 | (rn&0x1f)<<5
}

// Svc encodes: svc #imm16.
func Svc(imm16 uint32) Word {
	return 0xD4000001 | (imm16&0xffff)<<5
}

// BCond encodes: b.cond offset — offset is the PC-relative distance in
// bytes from the branch instruction itself to the target, a multiple of
// 4. Overflow beyond the 19-bit field is the caller's responsibility to
// avoid (not checked, mirroring the reference's lack of a range check).
func BCond(cond Cond, offsetBytes int32) Word {
	imm19 := uint32(offsetBytes>>2) & 0x7ffff
	return 0x54000000 | imm19<<5 | uint32(cond)&0xf
}
