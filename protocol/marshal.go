// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"bytes"
	"encoding/binary"
	"math/big"

	"gitlab.com/meridianledger/meridian/pkg/errors"
)

// Records are stored as uvarint-framed fields. The encoding is internal to
// the keyed store and is not a wire format of the broader ledger.

func writeUint(buf *bytes.Buffer, v uint64) {
	buf.Write(binary.AppendUvarint(nil, v))
}

func writeString(buf *bytes.Buffer, s string) {
	writeUint(buf, uint64(len(s)))
	buf.WriteString(s)
}

func writeBigInt(buf *bytes.Buffer, v *big.Int) {
	b := v.Bytes()
	writeUint(buf, uint64(len(b)))
	buf.Write(b)
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func readUint(rd *bytes.Reader) (uint64, error) {
	v, err := binary.ReadUvarint(rd)
	if err != nil {
		return 0, errors.EncodingError.Wrap(err)
	}
	return v, nil
}

func readString(rd *bytes.Reader) (string, error) {
	n, err := readUint(rd)
	if err != nil {
		return "", err
	}
	if n > uint64(rd.Len()) {
		return "", errors.EncodingError.WithFormat("field length %d exceeds remaining data", n)
	}
	b := make([]byte, n)
	_, err = rd.Read(b)
	if err != nil {
		return "", errors.EncodingError.Wrap(err)
	}
	return string(b), nil
}

func readBigInt(rd *bytes.Reader) (*big.Int, error) {
	s, err := readString(rd)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes([]byte(s)), nil
}

func readBool(rd *bytes.Reader) (bool, error) {
	b, err := rd.ReadByte()
	if err != nil {
		return false, errors.EncodingError.Wrap(err)
	}
	return b != 0, nil
}

func (s *SupplyLedger) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	writeString(buf, string(s.Token))
	writeBigInt(buf, s.Issued)
	writeUint(buf, s.PreburnValue)
	return buf.Bytes(), nil
}

func (s *SupplyLedger) UnmarshalBinary(data []byte) error {
	rd := bytes.NewReader(data)
	token, err := readString(rd)
	if err != nil {
		return err
	}
	issued, err := readBigInt(rd)
	if err != nil {
		return err
	}
	preburn, err := readUint(rd)
	if err != nil {
		return err
	}
	s.Token, s.Issued, s.PreburnValue = Token(token), issued, preburn
	return nil
}

func (q *PreburnQueue) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	writeString(buf, string(q.Account))
	writeString(buf, string(q.Token))
	writeUint(buf, uint64(len(q.Requests)))
	for _, amount := range q.Requests {
		writeUint(buf, amount)
	}
	writeBool(buf, q.IsApproved)
	return buf.Bytes(), nil
}

func (q *PreburnQueue) UnmarshalBinary(data []byte) error {
	rd := bytes.NewReader(data)
	account, err := readString(rd)
	if err != nil {
		return err
	}
	token, err := readString(rd)
	if err != nil {
		return err
	}
	n, err := readUint(rd)
	if err != nil {
		return err
	}
	var requests []uint64
	for i := uint64(0); i < n; i++ {
		amount, err := readUint(rd)
		if err != nil {
			return err
		}
		requests = append(requests, amount)
	}
	approved, err := readBool(rd)
	if err != nil {
		return err
	}
	q.Account, q.Token, q.Requests, q.IsApproved = Address(account), Token(token), requests, approved
	return nil
}

func (a *MintAuthority) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	writeString(buf, string(a.Token))
	return buf.Bytes(), nil
}

func (a *MintAuthority) UnmarshalBinary(data []byte) error {
	rd := bytes.NewReader(data)
	token, err := readString(rd)
	if err != nil {
		return err
	}
	a.Token = Token(token)
	return nil
}
